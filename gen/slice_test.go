package gen

import "testing"

func TestSliceOfLength(t *testing.T) {
	r := NewRand(123)
	g := SliceOf(Int(Size{}), Size{Min: 2, Max: 6})
	for i := 0; i < 20; i++ {
		v, _ := g.Generate(r, Size{})
		if len(v) < 2 || len(v) > 5 {
			t.Errorf("SliceOf length = %d, expected in [2, 5]", len(v))
		}
	}
}

func TestSliceOfRuntimeSizeOverridesLocal(t *testing.T) {
	r := NewRand(123)
	g := SliceOf(Int(Size{}), Size{Min: 0, Max: 5})
	v, _ := g.Generate(r, Size{Min: 0, Max: 3})
	if len(v) > 3 {
		t.Errorf("SliceOf() with runtime size returned length %d, expected <= 3", len(v))
	}
}

func TestSliceOfShrinkEmitsEmptyFirst(t *testing.T) {
	r := NewRand(123)
	g := SliceOf(Int(Size{Min: 0, Max: 100}), Size{Min: 3, Max: 5})
	start, shrink := g.Generate(r, Size{})
	if len(start) == 0 {
		t.Fatal("expected a non-empty starting slice")
	}

	first, ok := shrink()
	if !ok {
		t.Fatal("shrink sequence was empty")
	}
	if len(first) != 0 {
		t.Errorf("first shrink candidate = %v, expected the empty slice", first)
	}
}

func TestSliceOfShrinkNeverEmitsOriginal(t *testing.T) {
	r := NewRand(123)
	g := SliceOf(Int(Size{Min: 0, Max: 100}), Size{Min: 3, Max: 5})
	start, shrink := g.Generate(r, Size{})

	count := 0
	for {
		v, ok := shrink()
		if !ok {
			break
		}
		if sig(v) == sig(start) {
			t.Error("slice shrinker emitted the original value")
		}
		count++
		if count > 100000 {
			t.Fatal("slice shrinker did not terminate")
		}
	}
}
