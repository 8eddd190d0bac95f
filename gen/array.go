package gen

// ArrayOf generates a slice of exact length n from the element
// generator. Cannot remove elements (the length is fixed); shrinks only
// by shrinking elements in place, one at a time.
func ArrayOf[T any](elem Generator[T], n int) Generator[[]T] {
	return FromReshrinkable(func(r *Rand, _ Size) ([]T, Shrinker[[]T]) {
		if n < 0 {
			n = 0
		}
		vals := make([]T, n)
		shks := make([]Shrinker[T], n)
		for i := 0; i < n; i++ {
			v, s := elem.Generate(r, Size{})
			vals[i], shks[i] = v, s
		}
		return vals, fixedLengthShrink(vals, shks)
	}, func(vals []T) Shrinker[[]T] {
		shks := make([]Shrinker[T], len(vals))
		for i, v := range vals {
			shks[i] = elem.Reshrink(v)
		}
		return fixedLengthShrink(vals, shks)
	})
}

// Array2D generates a rows×cols slice of slices from the element
// generator, fixed in both dimensions.
func Array2D[T any](elem Generator[T], rows, cols int) Generator[[][]T] {
	arrGen := ArrayOf(elem, cols)
	return FromReshrinkable(func(r *Rand, _ Size) ([][]T, Shrinker[[][]T]) {
		if rows < 0 {
			rows = 0
		}
		if cols < 0 {
			cols = 0
		}
		vals := make([][]T, rows)
		shks := make([]Shrinker[[]T], rows)
		for i := 0; i < rows; i++ {
			v, s := arrGen.Generate(r, Size{})
			vals[i], shks[i] = v, s
		}
		return vals, fixedLengthShrink(vals, shks)
	}, func(vals [][]T) Shrinker[[][]T] {
		shks := make([]Shrinker[[]T], len(vals))
		for i, v := range vals {
			shks[i] = arrGen.Reshrink(v)
		}
		return fixedLengthShrink(vals, shks)
	})
}

// fixedLengthShrink shrinks each position independently without
// changing the collection's length — the policy ArrayOf and Array2D
// share, since neither can remove elements.
func fixedLengthShrink[T any](vals []T, shks []Shrinker[T]) Shrinker[[]T] {
	L := len(vals)
	queue := make([][]T, 0, 32)
	seen := map[string]struct{}{sig(vals): {}}
	push := func(s []T) {
		k := sig(s)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		queue = append(queue, append([]T(nil), s...))
	}
	for pos := 0; pos < L; pos++ {
		for _, v := range drainAll(shks[pos]) {
			cand := append([]T(nil), vals...)
			cand[pos] = v
			push(cand)
		}
	}
	return queueShrinker(queue)
}
