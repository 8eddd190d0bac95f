package prop

import "github.com/kaelor/qcheck/gen"

// Phase is the driver's current mode of execution.
type Phase int

const (
	PhaseGenerate Phase = iota
	PhaseStartShrink
	PhaseShrink
)

func (p Phase) String() string {
	switch p {
	case PhaseGenerate:
		return "generate"
	case PhaseStartShrink:
		return "start-shrink"
	case PhaseShrink:
		return "shrink"
	default:
		return "unknown"
	}
}

// Outcome is the closed variant a Prop evaluation resolves to. Failure
// is signaled out of band via panic, not as an Outcome value.
type Outcome int

const (
	Success Outcome = iota
	Discard
)

// TestState is the mutable envelope threaded through a Prop[T]
// evaluation. One TestState is owned exclusively by a single Check
// call; it is never shared across evaluations.
type TestState struct {
	Phase Phase

	Rand *gen.Rand
	Seed int64
	Size gen.Size

	Label string

	SuccessCount int
	DiscardCount int

	ClassOrder []string
	Classes    map[string]int

	// Values holds the recorded draw for every forAll call made so far
	// in the current iteration, type-erased. During Shrink phase the
	// driver overwrites this slice with the candidate tuple under test
	// before invoking the property.
	Values []any

	// ShrinkSeqs holds, once populated in StartShrink, one materialized
	// candidate list per recorded draw — each list's last element is
	// the originally-drawn value, per the Shrinker contract.
	ShrinkSeqs [][]any

	// reshrinkers holds, per recorded draw, a type-erased function that
	// derives a fresh, materialized shrink sequence for an arbitrary
	// value of that draw's type; for a generator that doesn't support
	// reshrinking it returns an empty sequence. The coordinate-descent search uses
	// this to re-center a position around a newly accepted value instead
	// of settling for the first candidate in its original sequence.
	reshrinkers []func(any) []any

	cursor  int
	pending []func() (any, bool)
}

// newTestState builds a fresh TestState for a Generate-phase run.
func newTestState(seed int64, size gen.Size, label string) *TestState {
	return &TestState{
		Phase:   PhaseGenerate,
		Rand:    gen.NewRand(seed),
		Seed:    seed,
		Size:    size,
		Label:   label,
		Classes: make(map[string]int),
	}
}

// reset clears the per-iteration draw bookkeeping before a fresh
// Generate-phase iteration. Counters, classes, and the PRNG survive.
func (s *TestState) reset() {
	s.Values = s.Values[:0]
	s.pending = s.pending[:0]
	s.reshrinkers = s.reshrinkers[:0]
	s.cursor = 0
}

func drainAny(next func() (any, bool)) []any {
	if next == nil {
		return nil
	}
	var out []any
	for {
		v, ok := next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
