// Package gen provides the generator algebra for property-based testing:
// pure functions from (PRNG, Size) to a value, closed under map, bind,
// filter, product, and choice, each paired with a finite, simpler-first
// shrink sequence.
package gen

// Size bounds the magnitude of generated scalars and the length of
// generated collections. Min/Max are interpreted per-generator: for
// integers they bound magnitude, for collections they bound length, for
// floats they scale the range. The zero Size means "let the generator
// pick its own default."
type Size struct {
	// Min is the minimum bound for generated values.
	Min int
	// Max is the maximum bound for generated values.
	Max int
}

// Shrinker is a finite, simpler-first, single-pass lazy sequence of
// candidates derived from a previously generated value. Calling it
// repeatedly pulls the next candidate; ok is false once the sequence is
// exhausted. A Shrinker must never reproduce the value it was built
// from — the driver appends the original value as the final fallback
// candidate itself.
type Shrinker[T any] func() (next T, ok bool)

// Generator is the contract every generator implements: a pure function
// of a PRNG and a Size, returning a value together with the Shrinker
// that proposes simpler candidates derived from it. Reshrink derives a
// fresh shrink sequence for an arbitrary value of T, not only the one
// Generate most recently drew — the coordinate-descent search in prop
// uses it to re-center a position around a newly accepted, simpler
// failing value instead of settling for the first one it finds.
// Generators built with plain From return an immediately-exhausted
// sequence from Reshrink, signaling they cannot re-center.
type Generator[T any] interface {
	Generate(r *Rand, sz Size) (value T, shrink Shrinker[T])
	Reshrink(v T) Shrinker[T]
}

// Shrink strategy constants: the order in which the coordinate-descent
// search in prop visits the recorded draws (positions) while shrinking
// a failing test case. BFS refines every position by one step before
// returning to the first; DFS drives one position to a local fixed
// point before moving to the next. Candidate order within a single
// position's shrink sequence is always simplest-first, regardless of
// strategy — see queueShrinker.
const (
	ShrinkStrategyBFS = "bfs"
	ShrinkStrategyDFS = "dfs"
)

var shrinkStrategy = ShrinkStrategyBFS

// SetShrinkStrategy sets the package-level shrink strategy that the
// coordinate-descent search in prop reads; it does not change any
// generator's own shrink sequence. Valid strategies are "bfs" and "dfs";
// any other value defaults to "bfs".
func SetShrinkStrategy(s string) {
	if s == ShrinkStrategyDFS {
		shrinkStrategy = ShrinkStrategyDFS
	} else {
		shrinkStrategy = ShrinkStrategyBFS
	}
}

// GetShrinkStrategy returns the current shrinking strategy.
func GetShrinkStrategy() string {
	return shrinkStrategy
}

// GenFunc adapts a plain function to the Generator interface, with an
// optional per-value reshrink function for generators built with
// FromReshrinkable.
type GenFunc[T any] struct {
	fn       func(r *Rand, sz Size) (T, Shrinker[T])
	reshrink func(T) Shrinker[T]
}

// Generate implements Generator for GenFunc.
func (g GenFunc[T]) Generate(r *Rand, sz Size) (T, Shrinker[T]) {
	return g.fn(r, sz)
}

// Reshrink implements Generator for GenFunc.
func (g GenFunc[T]) Reshrink(v T) Shrinker[T] {
	if g.reshrink == nil {
		return func() (T, bool) { var zero T; return zero, false }
	}
	return g.reshrink(v)
}

// From builds a Generator from a closure. This is the escape hatch used
// by the combinators in this package and is the recommended way to
// write a custom one. The resulting generator cannot be reshrunk from
// an arbitrary value — use FromReshrinkable when the shrink policy is a
// pure function of the value, as every scalar built-in's is.
func From[T any](fn func(*Rand, Size) (T, Shrinker[T])) Generator[T] {
	return GenFunc[T]{fn: fn}
}

// FromReshrinkable is From plus a per-value shrink function the
// coordinate-descent search can invoke on any candidate value, not only
// the one Generate most recently drew.
func FromReshrinkable[T any](fn func(*Rand, Size) (T, Shrinker[T]), reshrink func(T) Shrinker[T]) Generator[T] {
	return GenFunc[T]{fn: fn, reshrink: reshrink}
}

// queueShrinker turns a precomputed, ordered slice of candidates into a
// Shrinker, always draining it FIFO — simplest first, per the Shrinker
// contract. The bfs/dfs strategy does not affect this order: it governs
// how the coordinate-descent search in prop schedules work across
// positions, not the order of candidates within one position's queue.
func queueShrinker[T any](queue []T) Shrinker[T] {
	i := 0
	return func() (T, bool) {
		var zero T
		if i >= len(queue) {
			return zero, false
		}
		v := queue[i]
		i++
		return v, true
	}
}
