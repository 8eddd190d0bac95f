package gen

// Float64 generates float64 values unrestricted around zero, scaled by
// Size: magnitude M = autoMagnitude(...), over the range [-M, M).
func Float64(size Size) Generator[float64] {
	return FromReshrinkable(func(r *Rand, sz Size) (float64, Shrinker[float64]) {
		m := float64(autoMagnitude(size, sz, 100))
		v := -m + r.Float64()*2*m
		return v, floatShrink(v)
	}, floatShrink[float64])
}

// Float64From generates float64 values uniformly over [min, min+width).
func Float64From(min, width float64) Generator[float64] {
	if width <= 0 {
		width = 1
	}
	reshrink := func(v float64) Shrinker[float64] { return boundedFloatShrink(floatShrink(v), min, min+width) }
	return FromReshrinkable(func(r *Rand, _ Size) (float64, Shrinker[float64]) {
		v := min + r.Float64()*width
		return v, reshrink(v)
	}, reshrink)
}

// Float64Range generates float64 values uniformly over the explicit
// range [min, max).
func Float64Range(min, max float64) Generator[float64] {
	if max <= min {
		max = min + 1
	}
	reshrink := func(v float64) Shrinker[float64] { return boundedFloatShrink(floatShrink(v), min, max) }
	return FromReshrinkable(func(r *Rand, _ Size) (float64, Shrinker[float64]) {
		v := min + r.Float64()*(max-min)
		return v, reshrink(v)
	}, reshrink)
}
