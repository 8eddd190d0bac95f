package prop

import (
	"github.com/sirupsen/logrus"

	"github.com/kaelor/qcheck/gen"
)

// Check drives p through the phased evaluation against condition:
// Generate until a failure or Tries is reached, then StartShrink, then
// a coordinate-descent Shrink search, then a final unsuppressed replay
// of the minimized candidate. It returns p unchanged so multiple Check
// calls can be chained against the same Prop. A genuine property
// failure escalates to the caller as a panic carrying PropertyFailed
// (or NondeterministicProperty, if the minimized replay could not
// reproduce the failure).
func Check[T any](cfg Config, p Prop[T], condition func(T) bool) Prop[T] {
	asserted := FailIf(p, condition)
	runDriver(asserted, cfg)
	return p
}

func runDriver[T any](p Prop[T], cfg Config) {
	seed := cfg.effectiveSeed()
	tries := cfg.effectiveTries()
	maxShrink := cfg.effectiveMaxShrink()
	size := cfg.effectiveSize()
	label := cfg.effectiveLabel()
	gen.SetShrinkStrategy(cfg.ShrinkStrat)

	log := logrus.WithFields(logrus.Fields{"label": label, "seed": seed, "tries": tries})
	log.Debug("qcheck: generate phase start")

	state := newTestState(seed, size, label)

	var failure *PropertyFailed
	runGenerate(p, state, tries, &failure)

	if failure == nil {
		log.Debug("qcheck: generate phase done, no failure")
		reportSuccess(state)
		return
	}

	log.WithField("examples_run", state.SuccessCount+state.DiscardCount+1).
		Debug("qcheck: falsifiable, entering start-shrink phase")
	reportFalsifiable(state.SuccessCount + state.DiscardCount + 1)

	state.Phase = PhaseStartShrink
	state.cursor = 0
	state.ShrinkSeqs = nil
	runSuppressed(p, state)

	best, steps := shrinkSearch(p, state, maxShrink, log)

	log.WithField("steps", steps).Debug("qcheck: shrink phase done, final replay")

	state.Phase = PhaseShrink
	state.Values = best
	state.cursor = 0
	_, _ = p(state) // unsuppressed: PropertyFailed escalates to the caller

	panic(NondeterministicProperty{Label: label, Value: best})
}

// runGenerate executes the Generate loop, recovering PropertyFailed
// into failure and letting anything else (misuse panics) escalate
// immediately, per the fatal-to-the-check error band.
func runGenerate[T any](p Prop[T], state *TestState, tries int, failure **PropertyFailed) {
	defer func() {
		if r := recover(); r != nil {
			if pf, ok := r.(PropertyFailed); ok {
				*failure = &pf
				return
			}
			panic(r)
		}
	}()
	for state.SuccessCount+state.DiscardCount < tries {
		state.reset()
		outcome, _ := p(state)
		switch outcome {
		case Success:
			state.SuccessCount++
		case Discard:
			state.DiscardCount++
		}
	}
}

// runSuppressed runs p once, swallowing any panic. Used for the
// StartShrink pass, which only exists to populate ShrinkSeqs and is
// expected to re-raise the same PropertyFailed that Generate already
// recorded.
func runSuppressed[T any](p Prop[T], state *TestState) {
	defer func() { _ = recover() }()
	p(state)
}

// shrinkSearch performs the coordinate-descent search described by the
// driver's Shrink phase. Each position's materialized shrink sequence
// (simplest first) is walked in order, holding the other positions at
// whatever value their own walk currently sits on. Whenever a
// candidate still reproduces the failure, the position re-centers: if
// its generator supports reshrinking, a fresh, finer sequence is
// derived around the newly accepted value and walked from its own
// start, so the search keeps driving towards the exact minimal
// counterexample instead of stopping at the first failing candidate it
// happens to find. A position with no reshrinker (or whose reshrink
// sequence comes back empty) settles for that first still-failing
// value, same as before.
//
// The bfs/dfs strategy governs how this refinement is scheduled across
// positions, not the order of candidates within one: dfs drives a
// position to its local fixed point before moving to the next; bfs
// interleaves one refinement step per position, round-robin, so no
// single position can monopolize the shrink budget before the others
// get a turn.
func shrinkSearch[T any](p Prop[T], state *TestState, maxShrink int, log *logrus.Entry) ([]any, int) {
	n := len(state.ShrinkSeqs)
	cur := make([]any, n)
	for i, seq := range state.ShrinkSeqs {
		if len(seq) > 0 {
			cur[i] = seq[0]
		}
	}
	best := append([]any(nil), state.Values...)
	steps := 0

	tryTuple := func(tuple []any) bool {
		steps++
		return stillFails(p, state, tuple)
	}
	accept := func() {
		best = append([]any(nil), cur...)
		log.Debug("qcheck: shrink candidate accepted")
		reportProgress()
	}

	if n > 0 && steps < maxShrink {
		if tryTuple(cur) {
			accept()
		}
	}

	reshrinkerFor := func(i int) func(any) []any {
		if i < len(state.reshrinkers) {
			return state.reshrinkers[i]
		}
		return nil
	}

	switch gen.GetShrinkStrategy() {
	case gen.ShrinkStrategyDFS:
		for i := 0; i < n && steps < maxShrink; i++ {
			shrinkPosition(i, state.ShrinkSeqs[i], 1, reshrinkerFor(i), cur, tryTuple, accept, maxShrink, &steps)
		}
	default: // bfs: round-robin one refinement step per position per round
		seqs := make([][]any, n)
		copy(seqs, state.ShrinkSeqs)
		idx := make([]int, n)
		for i := range idx {
			idx[i] = 1
		}
		active := make([]bool, n)
		for i := range active {
			active[i] = len(seqs[i]) > 1
		}

		for steps < maxShrink && anyActive(active) {
			for i := 0; i < n && steps < maxShrink; i++ {
				if !active[i] {
					continue
				}
				if idx[i] >= len(seqs[i]) {
					active[i] = false
					continue
				}
				cur[i] = seqs[i][idx[i]]
				idx[i]++
				if !tryTuple(cur) {
					continue
				}
				accept()
				if reshrink := reshrinkerFor(i); reshrink != nil {
					if next := reshrink(cur[i]); len(next) > 0 {
						seqs[i] = next
						idx[i] = 0
						continue
					}
				}
				active[i] = false
			}
		}
	}

	return best, steps
}

// shrinkPosition drives position i to a local fixed point: it walks
// seq from start, and whenever a candidate still fails, re-derives a
// fresh sequence around it via reshrink (when available) and restarts
// the walk from that sequence's beginning. It returns once a full pass
// over the current sequence finds no further improvement, reshrink is
// unavailable, or the reshrunk sequence is empty.
func shrinkPosition(i int, seq []any, start int, reshrink func(any) []any, cur []any, tryTuple func([]any) bool, accept func(), maxShrink int, steps *int) {
	for *steps < maxShrink {
		accepted := false
		for k := start; k < len(seq) && *steps < maxShrink; k++ {
			cur[i] = seq[k]
			if tryTuple(cur) {
				accept()
				accepted = true
				break
			}
		}
		if !accepted {
			return
		}
		if reshrink == nil {
			return
		}
		next := reshrink(cur[i])
		if len(next) == 0 {
			return
		}
		seq = next
		start = 0
	}
}

func anyActive(active []bool) bool {
	for _, a := range active {
		if a {
			return true
		}
	}
	return false
}

// stillFails replays the property once in Shrink phase with values set
// to tuple, reporting whether PropertyFailed was raised. Any other
// panic is suppressed and treated as "does not reproduce" — a
// shrink-phase candidate trial is a local, recoverable error band.
func stillFails[T any](p Prop[T], state *TestState, tuple []any) (fails bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(PropertyFailed); ok {
				fails = true
				return
			}
			fails = false
		}
	}()
	state.Phase = PhaseShrink
	state.Values = tuple
	state.cursor = 0
	p(state)
	return false
}
