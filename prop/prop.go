// Package prop provides the property algebra for property-based
// testing: Prop[T] values composed through map/bind/filter/order-by,
// driven to a pass/minimized-counterexample decision by Check.
package prop

import (
	"github.com/kaelor/qcheck/gen"
)

// Prop is a function from TestState to an Outcome and the value
// produced along the way. Failure is signaled by panicking with a
// PropertyFailed, not by returning an Outcome.
type Prop[T any] func(*TestState) (Outcome, T)

// Pure always succeeds with v, ignoring the state entirely.
func Pure[T any](v T) Prop[T] {
	return func(_ *TestState) (Outcome, T) { return Success, v }
}

// Failed raises PropertyFailed carrying v and the state's current
// label.
func Failed[T any](v T) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		panic(PropertyFailed{Label: s.Label, Value: v})
	}
}

// Discarded succeeds with the Discard outcome, carrying v.
func Discarded[T any](v T) Prop[T] {
	return func(_ *TestState) (Outcome, T) { return Discard, v }
}

// ForAll draws from g on phase Generate and records the draw together
// with its shrinker and a reshrinker — a closure over g.Reshrink the
// coordinate-descent search uses to re-derive a fresh shrink sequence
// around any candidate value, not only the one just drawn; on phase
// StartShrink it drains that shrinker into a materialized candidate
// list (with the original value appended as the final fallback) and
// stores it in state.ShrinkSeqs; on phase Shrink it simply replays
// whatever the driver has already placed in state.Values. The cursor
// advances on every phase but Generate.
func ForAll[T any](g gen.Generator[T]) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		switch s.Phase {
		case PhaseGenerate:
			v, shrink := g.Generate(s.Rand, s.Size)
			s.Values = append(s.Values, v)
			s.pending = append(s.pending, func() (any, bool) { return shrink() })
			s.reshrinkers = append(s.reshrinkers, func(val any) []any {
				sh := g.Reshrink(val.(T))
				return drainAny(func() (any, bool) { return sh() })
			})
			return Success, v

		case PhaseStartShrink:
			idx := s.cursor
			s.cursor++
			v := s.Values[idx].(T)
			seq := drainAny(s.pending[idx])
			seq = append(seq, v)
			s.ShrinkSeqs = append(s.ShrinkSeqs, seq)
			return Success, v

		default: // PhaseShrink
			idx := s.cursor
			s.cursor++
			v := s.Values[idx].(T)
			return Success, v
		}
	}
}

// ForAllT is ForAll using the default Arbitrary Registry's entry for
// T, looked up with the size in effect at the time the property runs.
func ForAllT[T any]() Prop[T] {
	return func(s *TestState) (Outcome, T) {
		g, err := gen.Get[T](s.Size)
		if err != nil {
			panic(err)
		}
		return ForAll(g)(s)
	}
}

// Any samples g from a freshly re-seeded clone of the state's PRNG.
// The value is neither recorded nor shrunk — it exists for dependent
// sampling, e.g. picking an index into a value drawn by an earlier
// ForAll.
func Any[T any](g gen.Generator[T]) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		clone := s.Rand.Clone(s.Seed)
		v, _ := g.Generate(clone, s.Size)
		return Success, v
	}
}

// Bind runs p; on Success it continues with k(value) against the same
// state; on Discard it short-circuits with Discard and a zero value.
func Bind[T, U any](p Prop[T], k func(T) Prop[U]) Prop[U] {
	return func(s *TestState) (Outcome, U) {
		outcome, v := p(s)
		if outcome == Discard {
			var zero U
			return Discard, zero
		}
		return k(v)(s)
	}
}

// Map applies f to p's result, preserving the Discard short-circuit.
func Map[T, U any](p Prop[T], f func(T) U) Prop[U] {
	return Bind(p, func(v T) Prop[U] { return Pure(f(v)) })
}

// Product runs p then q against the same state, combining their
// results with f.
func Product[T, U, V any](p Prop[T], q Prop[U], f func(T, U) V) Prop[V] {
	return Bind(p, func(a T) Prop[V] {
		return Bind(q, func(b U) Prop[V] { return Pure(f(a, b)) })
	})
}

// Where runs p; if pred holds for the result, continues as Pure,
// otherwise discards.
func Where[T any](p Prop[T], pred func(T) bool) Prop[T] {
	return Bind(p, func(v T) Prop[T] {
		if pred(v) {
			return Pure(v)
		}
		return Discarded(v)
	})
}

// FailIf runs p; if pred holds for the result, continues as Pure,
// otherwise raises PropertyFailed. Check is built on FailIf.
func FailIf[T any](p Prop[T], pred func(T) bool) Prop[T] {
	return Bind(p, func(v T) Prop[T] {
		if pred(v) {
			return Pure(v)
		}
		return Failed(v)
	})
}

// Restrict temporarily overrides state.Size for the duration of p,
// restoring the previous size on exit regardless of how p returns
// (success, discard, or a panicking failure).
func Restrict[T any](p Prop[T], size gen.Size) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		prev := s.Size
		s.Size = size
		defer func() { s.Size = prev }()
		return p(s)
	}
}

// OrderBy runs p, then stringifies classify(value) and bumps that
// bucket's count in state.Classes, preserving first-seen order in
// state.ClassOrder. The outcome and value are returned unchanged.
func OrderBy[T any, K any](p Prop[T], classify func(T) K) Prop[T] {
	return func(s *TestState) (Outcome, T) {
		outcome, v := p(s)
		key := stringifyClass(classify(v))
		if _, ok := s.Classes[key]; !ok {
			s.ClassOrder = append(s.ClassOrder, key)
		}
		s.Classes[key]++
		return outcome, v
	}
}
