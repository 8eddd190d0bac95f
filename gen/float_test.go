package gen

import "testing"

func TestFloat32(t *testing.T) {
	g := Float32(Size{Min: 0, Max: 100})
	r := NewRand(123)

	_, shrink := g.Generate(r, Size{})
	if shrink == nil {
		t.Error("Float32().Generate() returned nil shrinker")
	}
}

func TestFloat32Range(t *testing.T) {
	r := NewRand(123)

	tests := []struct {
		name     string
		min, max float32
	}{
		{"normal range", 1.5, 10.5},
		{"negative range", -10, -1},
		{"reversed range", 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Float32Range(tt.min, tt.max)
			v, shrink := g.Generate(r, Size{})

			lo, hi := tt.min, tt.max
			if hi <= lo {
				hi = lo + 1
			}
			if v < lo || v >= hi {
				t.Errorf("Float32Range(%v, %v) = %v, expected in [%v, %v)", tt.min, tt.max, v, lo, hi)
			}
			if shrink == nil {
				t.Error("Float32Range().Generate() returned nil shrinker")
			}
		})
	}
}

func TestFloat32From(t *testing.T) {
	r := NewRand(123)
	g := Float32From(0, 10)
	v, _ := g.Generate(r, Size{})
	if v < 0 || v >= 10 {
		t.Errorf("Float32From(0, 10) = %v, expected in [0, 10)", v)
	}
}
