package gen

import (
	"math"
	"testing"
)

func TestFloat64(t *testing.T) {
	g := Float64(Size{Min: 0, Max: 100})
	r := NewRand(123)

	_, shrink := g.Generate(r, Size{})
	if shrink == nil {
		t.Error("Float64().Generate() returned nil shrinker")
	}
}

func TestFloat64Range(t *testing.T) {
	r := NewRand(123)

	tests := []struct {
		name     string
		min, max float64
	}{
		{"normal range", 1.5, 10.5},
		{"negative range", -10, -1},
		{"reversed range", 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Float64Range(tt.min, tt.max)
			v, shrink := g.Generate(r, Size{})

			lo, hi := tt.min, tt.max
			if hi <= lo {
				hi = lo + 1
			}
			if v < lo || v >= hi {
				t.Errorf("Float64Range(%v, %v) = %v, expected in [%v, %v)", tt.min, tt.max, v, lo, hi)
			}
			if shrink == nil {
				t.Error("Float64Range().Generate() returned nil shrinker")
			}
		})
	}
}

func TestFloatShrinkPolicy(t *testing.T) {
	shrink := floatShrink(3.7)
	var seen []float64
	for {
		v, ok := shrink()
		if !ok {
			break
		}
		seen = append(seen, v)
	}
	if len(seen) == 0 || seen[0] != 0 {
		t.Fatalf("floatShrink(3.7) = %v; expected to start with 0", seen)
	}

	foundFloor, foundCeil := false, false
	for _, v := range seen {
		if v == math.Floor(3.7) {
			foundFloor = true
		}
		if v == math.Ceil(3.7) {
			foundCeil = true
		}
	}
	if !foundFloor || !foundCeil {
		t.Errorf("floatShrink(3.7) = %v; expected floor and ceil among candidates", seen)
	}
}

func TestFloatShrinkNegatesNegative(t *testing.T) {
	shrink := floatShrink(-4.0)
	found4 := false
	for {
		v, ok := shrink()
		if !ok {
			break
		}
		if v == 4.0 {
			found4 = true
		}
	}
	if !found4 {
		t.Error("floatShrink(-4.0) expected -x=4.0 among candidates")
	}
}

func TestBoundedFloatShrinkFiltersOutOfRange(t *testing.T) {
	shrink := boundedFloatShrink(floatShrink(9.4), 5, 20)
	for {
		v, ok := shrink()
		if !ok {
			break
		}
		if v < 5 || v > 20 {
			t.Errorf("boundedFloatShrink produced out-of-bound value %v", v)
		}
	}
}
