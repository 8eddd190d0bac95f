package gen

// Int64 generates int64 values with an automatic range based on Size,
// the same way Int does, over the half-open range [-M, M).
func Int64(size Size) Generator[int64] {
	return FromReshrinkable(func(r *Rand, sz Size) (int64, Shrinker[int64]) {
		m := int64(autoMagnitude(size, sz, 100))
		lo, width := -m, 2*m
		if width <= 0 {
			width = 1
		}
		v := lo + int64(r.Int63n(int64(width)))
		return v, signedShrink(v)
	}, signedShrink[int64])
}

// Int64Range generates int64 uniformly over the explicit half-open
// range [min, max).
func Int64Range(min, max int64) Generator[int64] {
	if max <= min {
		max = min + 1
	}
	reshrink := func(v int64) Shrinker[int64] { return boundedShrink(signedShrink(v), min, max-1) }
	return FromReshrinkable(func(r *Rand, _ Size) (int64, Shrinker[int64]) {
		v := min + int64(r.Int63n(int64(max-min)))
		return v, reshrink(v)
	}, reshrink)
}
