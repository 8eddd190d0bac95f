package gen

import "testing"

func TestUint(t *testing.T) {
	g := Uint(Size{Min: 0, Max: 100})
	r := NewRand(123)

	for i := 0; i < 20; i++ {
		_, shrink := g.Generate(r, Size{})
		if shrink == nil {
			t.Fatal("Uint().Generate() returned nil shrinker")
		}
	}
}

func TestUintRange(t *testing.T) {
	r := NewRand(123)

	tests := []struct {
		name     string
		min, max uint
	}{
		{"normal range", 10, 20},
		{"single value", 5, 5},
		{"wide range", 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := UintRange(tt.min, tt.max)
			v, shrink := g.Generate(r, Size{})

			max := tt.max
			if max <= tt.min {
				max = tt.min + 1
			}
			if v < tt.min || v > max-1 {
				t.Errorf("UintRange(%d, %d) = %d, expected in [%d, %d)", tt.min, tt.max, v, tt.min, max)
			}
			if shrink == nil {
				t.Error("UintRange().Generate() returned nil shrinker")
			}
		})
	}
}

func TestUnsignedShrinkStartsAtZero(t *testing.T) {
	shrink := unsignedShrink(uint(50))
	first, ok := shrink()
	if !ok || first != 0 {
		t.Errorf("unsignedShrink(50) first candidate = %d, %v; expected 0, true", first, ok)
	}
}

func TestUnsignedShrinkNeverEmitsOriginal(t *testing.T) {
	for _, x := range []uint{0, 1, 5, 1000} {
		shrink := unsignedShrink(x)
		count := 0
		for {
			v, ok := shrink()
			if !ok {
				break
			}
			if v == x {
				t.Errorf("unsignedShrink(%d) emitted the original value", x)
			}
			count++
			if count > 10000 {
				t.Fatalf("unsignedShrink(%d) did not terminate", x)
			}
		}
	}
}
