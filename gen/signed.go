package gen

// signedShrink builds the finite, simpler-first shrink sequence for a
// signed integer x: 0 (if x != 0); -x (if x < 0); then x - x/2, x - x/4,
// … halving until the candidate is no longer closer to zero than x,
// with duplicates filtered. This is the Integer shrinker policy.
func signedShrink[T int | int64](x T) Shrinker[T] {
	queue := make([]T, 0, 8)
	seen := map[T]struct{}{x: {}}
	push := func(c T) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		queue = append(queue, c)
	}

	if x != 0 {
		push(0)
	}
	if x < 0 {
		push(-x)
	}

	absX := x
	if absX < 0 {
		absX = -absX
	}
	for k := T(2); ; k *= 2 {
		step := x / k
		c := x - step
		absC := c
		if absC < 0 {
			absC = -absC
		}
		if absC >= absX {
			break
		}
		push(c)
		if step == 0 {
			break
		}
	}
	return queueShrinker(queue)
}

// boundedShrink filters an underlying shrink sequence down to values
// inside [lo, hi], preserving order. Used by the explicit-range integer
// generators, whose shrink targets (0, -x) can otherwise land outside an
// asymmetric range.
func boundedShrink[T int | int64 | uint | uint64](s Shrinker[T], lo, hi T) Shrinker[T] {
	return func() (T, bool) {
		for {
			v, ok := s()
			if !ok {
				var zero T
				return zero, false
			}
			if v < lo || v > hi {
				continue
			}
			return v, true
		}
	}
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// autoMagnitude combines a construction-time Size and a runtime Size
// (the latter usually driven by the property driver's current size
// budget) into a single symmetric magnitude: the largest |Min|/|Max|
// seen across both, or dflt if neither configures one.
func autoMagnitude(local, runtime Size, dflt int) int {
	m := 0
	for _, s := range []Size{local, runtime} {
		if a := absInt(s.Min); a > m {
			m = a
		}
		if a := absInt(s.Max); a > m {
			m = a
		}
	}
	if m == 0 {
		m = dflt
	}
	return m
}
