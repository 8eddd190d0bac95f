package gen

// Float32 generates float32 values unrestricted around zero, scaled by
// Size, the 32-bit counterpart of Float64.
func Float32(size Size) Generator[float32] {
	return FromReshrinkable(func(r *Rand, sz Size) (float32, Shrinker[float32]) {
		m := float32(autoMagnitude(size, sz, 100))
		v := -m + float32(r.Float64())*2*m
		return v, floatShrink(v)
	}, floatShrink[float32])
}

// Float32From generates float32 values uniformly over [min, min+width).
func Float32From(min, width float32) Generator[float32] {
	if width <= 0 {
		width = 1
	}
	reshrink := func(v float32) Shrinker[float32] { return boundedFloatShrink(floatShrink(v), min, min+width) }
	return FromReshrinkable(func(r *Rand, _ Size) (float32, Shrinker[float32]) {
		v := min + float32(r.Float64())*width
		return v, reshrink(v)
	}, reshrink)
}

// Float32Range generates float32 values uniformly over the explicit
// range [min, max).
func Float32Range(min, max float32) Generator[float32] {
	if max <= min {
		max = min + 1
	}
	reshrink := func(v float32) Shrinker[float32] { return boundedFloatShrink(floatShrink(v), min, max) }
	return FromReshrinkable(func(r *Rand, _ Size) (float32, Shrinker[float32]) {
		v := min + float32(r.Float64())*(max-min)
		return v, reshrink(v)
	}, reshrink)
}
