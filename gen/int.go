// File: gen/int.go
package gen

// Int generates ints with an automatic range based on Size: the
// effective magnitude M is the largest |Min|/|Max| seen across the
// generator's own Size and the runtime Size supplied at Generate time
// (defaulting to 100 when neither configures one), over the half-open
// range [-M, M).
//
// Example: prop.ForAll(gen.Int(gen.Size{Max: 1000}))
func Int(size Size) Generator[int] {
	return FromReshrinkable(func(r *Rand, sz Size) (int, Shrinker[int]) {
		m := autoMagnitude(size, sz, 100)
		v := r.IntRange(-m, m)
		return v, signedShrink(v)
	}, signedShrink[int])
}

// IntFrom generates ints uniformly over the half-open range
// [min, min+width).
func IntFrom(min, width int) Generator[int] {
	if width <= 0 {
		width = 1
	}
	reshrink := func(v int) Shrinker[int] { return boundedShrink(signedShrink(v), min, min+width-1) }
	return FromReshrinkable(func(r *Rand, _ Size) (int, Shrinker[int]) {
		v := min + r.Intn(width)
		return v, reshrink(v)
	}, reshrink)
}

// IntRange generates ints uniformly over the explicit half-open range
// [min, max).
func IntRange(min, max int) Generator[int] {
	if max <= min {
		max = min + 1
	}
	reshrink := func(v int) Shrinker[int] { return boundedShrink(signedShrink(v), min, max-1) }
	return FromReshrinkable(func(r *Rand, _ Size) (int, Shrinker[int]) {
		v := min + r.Intn(max-min)
		return v, reshrink(v)
	}, reshrink)
}
