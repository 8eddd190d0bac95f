package gen

// SliceOf generates []T of random length from an element generator:
// length is drawn uniformly from size.Min..size.Max (default [0, 16)).
// Shrinks per the Collection policy: empty first, then shorter
// candidates by removing contiguous blocks, then per-element shrinks at
// the surviving length.
func SliceOf[T any](elem Generator[T], size Size) Generator[[]T] {
	return FromReshrinkable(func(r *Rand, sz Size) ([]T, Shrinker[[]T]) {
		if size.Min == 0 && size.Max == 0 {
			size.Min, size.Max = 0, 16
		}
		if sz.Min != 0 || sz.Max != 0 {
			size = sz
		}
		if size.Max < size.Min {
			size.Max = size.Min
		}

		n := size.Min
		if size.Max > size.Min {
			n += r.Intn(size.Max - size.Min)
		}

		vals := make([]T, n)
		shks := make([]Shrinker[T], n)
		for i := 0; i < n; i++ {
			v, s := elem.Generate(r, Size{})
			vals[i], shks[i] = v, s
		}
		return vals, collectionShrink(vals, shks)
	}, func(vals []T) Shrinker[[]T] {
		shks := make([]Shrinker[T], len(vals))
		for i, v := range vals {
			shks[i] = elem.Reshrink(v)
		}
		return collectionShrink(vals, shks)
	})
}
