package gen

// ptrOf generates *T by drawing a T from elem and taking its address.
// Shrinks towards nil first, then towards the pointee's own shrink
// sequence — the registry's generic-head path for *T.
func ptrOf[T any](elem Generator[T]) Generator[*T] {
	return FromReshrinkable(func(r *Rand, sz Size) (*T, Shrinker[*T]) {
		v, sh := elem.Generate(r, sz)
		p := &v
		return p, pointerShrink(sh)
	}, func(v *T) Shrinker[*T] {
		if v == nil {
			return func() (*T, bool) { return nil, false }
		}
		return pointerShrink(elem.Reshrink(*v))
	})
}

// pointerShrink yields nil once, then each of the pointee's shrink
// candidates by address.
func pointerShrink[T any](sh Shrinker[T]) Shrinker[*T] {
	yieldedNil := false
	return func() (*T, bool) {
		if !yieldedNil {
			yieldedNil = true
			return nil, true
		}
		v, ok := sh()
		if !ok {
			return nil, false
		}
		return &v, true
	}
}
