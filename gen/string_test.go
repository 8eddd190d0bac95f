package gen

import "testing"

func TestString(t *testing.T) {
	g := String("abc", Size{Min: 5, Max: 10})
	r := NewRand(123)

	value, shrink := g.Generate(r, Size{})

	if len(value) < 5 || len(value) > 10 {
		t.Errorf("String().Generate() = %q (len=%d), expected length 5-10", value, len(value))
	}
	if shrink == nil {
		t.Error("String().Generate() returned nil shrinker")
	}
}

func TestStringAlpha(t *testing.T) {
	g := StringAlpha(Size{Min: 3, Max: 8})
	r := NewRand(123)

	value, shrink := g.Generate(r, Size{})

	if len(value) < 3 || len(value) > 8 {
		t.Errorf("StringAlpha().Generate() = %q (len=%d), expected length 3-8", value, len(value))
	}
	if shrink == nil {
		t.Error("StringAlpha().Generate() returned nil shrinker")
	}
}

func TestStringAlphaNum(t *testing.T) {
	g := StringAlphaNum(Size{Min: 3, Max: 8})
	r := NewRand(123)

	value, shrink := g.Generate(r, Size{})

	if len(value) < 3 || len(value) > 8 {
		t.Errorf("StringAlphaNum().Generate() = %q (len=%d), expected length 3-8", value, len(value))
	}
	if shrink == nil {
		t.Error("StringAlphaNum().Generate() returned nil shrinker")
	}
}

func TestStringDigits(t *testing.T) {
	g := StringDigits(Size{Min: 3, Max: 8})
	r := NewRand(123)

	value, shrink := g.Generate(r, Size{})

	if len(value) < 3 || len(value) > 8 {
		t.Errorf("StringDigits().Generate() = %q (len=%d), expected length 3-8", value, len(value))
	}
	if shrink == nil {
		t.Error("StringDigits().Generate() returned nil shrinker")
	}
}

func TestStringASCII(t *testing.T) {
	g := StringASCII(Size{Min: 3, Max: 8})
	r := NewRand(123)

	value, shrink := g.Generate(r, Size{})

	if len(value) < 3 || len(value) > 8 {
		t.Errorf("StringASCII().Generate() = %q (len=%d), expected length 3-8", value, len(value))
	}
	if shrink == nil {
		t.Error("StringASCII().Generate() returned nil shrinker")
	}
}

func TestStringShrinksTowardEmpty(t *testing.T) {
	g := String("abc", Size{Min: 5, Max: 10})
	r := NewRand(123)

	value, shrink := g.Generate(r, Size{})
	if len(value) < 5 || len(value) > 10 {
		t.Errorf("String().Generate() = %q (len=%d), expected length 5-10", value, len(value))
	}

	first, ok := shrink()
	if !ok {
		t.Fatal("String shrinker produced no candidates")
	}
	if first != "" {
		t.Errorf("first string shrink candidate = %q, expected the empty string", first)
	}
}
