package gen

// Uint generates uint values with an automatic range based on Size,
// the unsigned counterpart of Int: with M = autoMagnitude(...)
// (defaulting to 100), values fall in the closed range [0, M].
func Uint(size Size) Generator[uint] {
	return FromReshrinkable(func(r *Rand, sz Size) (uint, Shrinker[uint]) {
		m := autoMagnitude(size, sz, 100)
		v := uint(r.Intn(m + 1))
		return v, unsignedShrink(v)
	}, unsignedShrink[uint])
}

// UintRange generates uint uniformly over the explicit half-open range
// [min, max).
func UintRange(min, max uint) Generator[uint] {
	if max <= min {
		max = min + 1
	}
	reshrink := func(v uint) Shrinker[uint] { return boundedShrink(unsignedShrink(v), min, max-1) }
	return FromReshrinkable(func(r *Rand, _ Size) (uint, Shrinker[uint]) {
		v := min + uint(r.Intn(int(max-min)))
		return v, reshrink(v)
	}, reshrink)
}
