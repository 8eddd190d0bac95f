// File: gen/comb.go
package gen

// -------------------------
// Basic combinators
// -------------------------

// Const always returns the same value, with no shrinking.
func Const[T any](v T) Generator[T] {
	return From(func(_ *Rand, _ Size) (T, Shrinker[T]) {
		return v, func() (T, bool) { var z T; return z, false }
	})
}

// OneOf chooses uniformly among the given generators, shrinking by
// continuing to shrink whichever generator was picked.
func OneOf[T any](gs ...Generator[T]) Generator[T] {
	if len(gs) == 0 {
		panic(InvalidArgument{Msg: "gen.OneOf: needs at least one generator"})
	}
	return From(func(r *Rand, sz Size) (T, Shrinker[T]) {
		idx := r.Intn(len(gs))
		return gs[idx].Generate(r, sz)
	})
}

// WeightedGen pairs a generator with its relative selection weight for
// Frequency.
type WeightedGen[T any] struct {
	Weight int
	Gen    Generator[T]
}

// Frequency chooses among generators with weighted probability: a
// generator with weight w is picked with probability w / sum(weights).
// Selection accumulates weights into a running total and compares
// against a draw in [0, total) — fixing the common accumulation bug of
// comparing the draw against each weight in isolation instead of the
// running sum.
func Frequency[T any](choices ...WeightedGen[T]) Generator[T] {
	if len(choices) == 0 {
		panic(InvalidArgument{Msg: "gen.Frequency: needs at least one choice"})
	}
	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total <= 0 {
		panic(InvalidArgument{Msg: "gen.Frequency: total weight must be positive"})
	}
	return From(func(r *Rand, sz Size) (T, Shrinker[T]) {
		n := r.Intn(total)
		acc := 0
		for _, c := range choices {
			if c.Weight <= 0 {
				continue
			}
			acc += c.Weight
			if n < acc {
				return c.Gen.Generate(r, sz)
			}
		}
		return choices[len(choices)-1].Gen.Generate(r, sz)
	})
}

// Elements chooses uniformly among a fixed set of plain values (no
// shrinking beyond picking the first element as simplest).
func Elements[T any](xs ...T) Generator[T] {
	if len(xs) == 0 {
		panic(InvalidArgument{Msg: "gen.Elements: needs at least one value"})
	}
	return From(func(r *Rand, _ Size) (T, Shrinker[T]) {
		idx := r.Intn(len(xs))
		v := xs[idx]
		if idx == 0 {
			return v, func() (T, bool) { var z T; return z, false }
		}
		return v, queueShrinker([]T{xs[0]})
	})
}

// -------------------------
// Combinators
// -------------------------

// Map applies f: A -> B, preserving shrinking by mapping A's candidates.
func Map[A, B any](ga Generator[A], f func(A) B) Generator[B] {
	return From(func(r *Rand, sz Size) (B, Shrinker[B]) {
		a, sa := ga.Generate(r, sz)
		b := f(a)
		return b, func() (B, bool) {
			na, ok := sa()
			if !ok {
				var z B
				return z, false
			}
			return f(na), true
		}
	})
}

// Filter keeps only values satisfying pred, drawing up to maxTries
// times before panicking with GeneratorExhausted. Shrink candidates
// that fail pred are silently skipped rather than surfaced.
func Filter[T any](g Generator[T], pred func(T) bool, maxTries int) Generator[T] {
	if maxTries <= 0 {
		maxTries = 100
	}
	return From(func(r *Rand, sz Size) (T, Shrinker[T]) {
		var v T
		var s Shrinker[T]
		okv := false
		for tries := 0; tries < maxTries; tries++ {
			v, s = g.Generate(r, sz)
			if pred(v) {
				okv = true
				break
			}
		}
		if !okv {
			panic(GeneratorExhausted{Tries: maxTries})
		}
		return v, func() (T, bool) {
			for {
				nv, ok := s()
				if !ok {
					var z T
					return z, false
				}
				if pred(nv) {
					return nv, true
				}
			}
		}
	})
}

// Bind (flatMap) makes the output generator depend on a value drawn
// from A. Shrinking first exhausts B's shrink sequence for the current
// A, then shrinks A and regenerates B from each shrunk A.
func Bind[A, B any](ga Generator[A], f func(A) Generator[B]) Generator[B] {
	return From(func(r *Rand, sz Size) (B, Shrinker[B]) {
		a, sa := ga.Generate(r, sz)
		gb := f(a)
		b, sb := gb.Generate(r, sz)

		shrinkingB := true

		return b, func() (B, bool) {
			if shrinkingB {
				if nb, ok := sb(); ok {
					return nb, true
				}
				shrinkingB = false
			}
			na, ok := sa()
			if !ok {
				var z B
				return z, false
			}
			a = na
			gb = f(a)
			nb, nsb := gb.Generate(r, sz)
			sb = nsb
			shrinkingB = true
			return nb, true
		}
	})
}

// Pair combines two independent generators into a generator of pairs,
// shrinking the first element to its minimum before shrinking the
// second.
func Pair[A, B any](ga Generator[A], gb Generator[B]) Generator[[2]any] {
	return Map(zip2(ga, gb), func(p pairAB[A, B]) [2]any {
		return [2]any{p.a, p.b}
	})
}

type pairAB[A, B any] struct {
	a A
	b B
}

func zip2[A, B any](ga Generator[A], gb Generator[B]) Generator[pairAB[A, B]] {
	return From(func(r *Rand, sz Size) (pairAB[A, B], Shrinker[pairAB[A, B]]) {
		a, sa := ga.Generate(r, sz)
		b, sb := gb.Generate(r, sz)
		shrinkingA := true
		return pairAB[A, B]{a, b}, func() (pairAB[A, B], bool) {
			if shrinkingA {
				if na, ok := sa(); ok {
					a = na
					return pairAB[A, B]{a, b}, true
				}
				shrinkingA = false
			}
			if nb, ok := sb(); ok {
				b = nb
				return pairAB[A, B]{a, b}, true
			}
			var z pairAB[A, B]
			return z, false
		}
	})
}

// Triple combines three independent generators into a generator of
// 3-tuples, shrinking left to right.
func Triple[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[[3]any] {
	return From(func(r *Rand, sz Size) ([3]any, Shrinker[[3]any]) {
		a, sa := ga.Generate(r, sz)
		b, sb := gb.Generate(r, sz)
		c, sc := gc.Generate(r, sz)
		state := 0 // 0: shrink a, 1: shrink b, 2: shrink c
		return [3]any{a, b, c}, func() ([3]any, bool) {
			for state < 3 {
				switch state {
				case 0:
					if na, ok := sa(); ok {
						a = na
						return [3]any{a, b, c}, true
					}
					state = 1
				case 1:
					if nb, ok := sb(); ok {
						b = nb
						return [3]any{a, b, c}, true
					}
					state = 2
				case 2:
					if nc, ok := sc(); ok {
						c = nc
						return [3]any{a, b, c}, true
					}
					state = 3
				}
			}
			var z [3]any
			return z, false
		}
	})
}
