package gen

// Uint64 generates uint64 values with an automatic range based on Size,
// the 64-bit counterpart of Uint: values fall in the closed range
// [0, M], with M defaulting to 100.
func Uint64(size Size) Generator[uint64] {
	return FromReshrinkable(func(r *Rand, sz Size) (uint64, Shrinker[uint64]) {
		m := autoMagnitude(size, sz, 100)
		v := uint64(r.Int63n(int64(m) + 1))
		return v, unsignedShrink(v)
	}, unsignedShrink[uint64])
}

// Uint64Range generates uint64 uniformly over the explicit half-open
// range [min, max).
func Uint64Range(min, max uint64) Generator[uint64] {
	if max <= min {
		max = min + 1
	}
	reshrink := func(v uint64) Shrinker[uint64] { return boundedShrink(unsignedShrink(v), min, max-1) }
	return FromReshrinkable(func(r *Rand, _ Size) (uint64, Shrinker[uint64]) {
		v := min + uint64(r.Int63n(int64(max-min)))
		return v, reshrink(v)
	}, reshrink)
}
