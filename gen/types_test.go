package gen

import "testing"

func TestSize(t *testing.T) {
	size := Size{Min: 10, Max: 20}
	if size.Min != 10 {
		t.Errorf("Size.Min = %d, expected 10", size.Min)
	}
	if size.Max != 20 {
		t.Errorf("Size.Max = %d, expected 20", size.Max)
	}
}

func TestSetShrinkStrategy(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		expected string
	}{
		{"set dfs", "dfs", ShrinkStrategyDFS},
		{"set bfs", "bfs", ShrinkStrategyBFS},
		{"set invalid", "invalid", ShrinkStrategyBFS},
		{"set empty", "", ShrinkStrategyBFS},
	}

	defer SetShrinkStrategy(ShrinkStrategyBFS)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetShrinkStrategy(tt.strategy)
			if got := GetShrinkStrategy(); got != tt.expected {
				t.Errorf("GetShrinkStrategy() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestGenFunc(t *testing.T) {
	expected := 42
	g := GenFunc[int]{
		fn: func(r *Rand, sz Size) (int, Shrinker[int]) {
			return expected, func() (int, bool) { return 0, false }
		},
	}

	r := NewRand(123)
	value, _ := g.Generate(r, Size{})
	if value != expected {
		t.Errorf("GenFunc.Generate() = %d, expected %d", value, expected)
	}
}

func TestFrom(t *testing.T) {
	expected := "test"
	g := From(func(r *Rand, sz Size) (string, Shrinker[string]) {
		return expected, func() (string, bool) { return "", false }
	})

	r := NewRand(123)
	value, _ := g.Generate(r, Size{})
	if value != expected {
		t.Errorf("From().Generate() = %q, expected %q", value, expected)
	}
}

func TestQueueShrinkerBFSOrder(t *testing.T) {
	defer SetShrinkStrategy(ShrinkStrategyBFS)
	SetShrinkStrategy(ShrinkStrategyBFS)

	shrink := queueShrinker([]int{1, 2, 3})
	var got []int
	for {
		v, ok := shrink()
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("queueShrinker(bfs) = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("queueShrinker(bfs)[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
}

// TestQueueShrinkerDFSOrder pins down that queueShrinker's per-position
// candidate order is simplest-first regardless of the package-level
// shrink strategy: bfs/dfs governs the coordinate-descent search's
// traversal across positions (see prop.shrinkSearch), not the order
// candidates are drained from one position's own queue.
func TestQueueShrinkerDFSOrder(t *testing.T) {
	defer SetShrinkStrategy(ShrinkStrategyBFS)
	SetShrinkStrategy(ShrinkStrategyDFS)

	shrink := queueShrinker([]int{1, 2, 3})
	var got []int
	for {
		v, ok := shrink()
		if !ok {
			break
		}
		got = append(got, v)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("queueShrinker(dfs) = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("queueShrinker(dfs)[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
}
