package gen

// Common alphabet shortcuts (pure ASCII, to avoid UTF-8 surprises).
const (
	AlphabetLower    = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha    = AlphabetLower + AlphabetUpper
	AlphabetDigits   = "0123456789"
	AlphabetAlphaNum = AlphabetAlpha + AlphabetDigits
	AlphabetASCII    = AlphabetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~"
)

// String generates strings of random length over an alphabet (default
// [0, 32) length, AlphabetAlphaNum alphabet). It is generated as a rune
// array and packed; it shrinks as a character collection (the Collection
// policy over Char's shrinker) and is repacked afterwards.
func String(alphabet string, size Size) Generator[string] {
	return FromReshrinkable(func(r *Rand, sz Size) (string, Shrinker[string]) {
		if len(alphabet) == 0 {
			alphabet = AlphabetAlphaNum
		}
		if size.Min == 0 && size.Max == 0 {
			size.Min, size.Max = 0, 32
		}
		if sz.Min != 0 || sz.Max != 0 {
			size = sz
		}
		if size.Max < size.Min {
			size.Max = size.Min
		}

		n := size.Min
		if size.Max > size.Min {
			n += r.Intn(size.Max - size.Min)
		}
		runes := make([]rune, n)
		shks := make([]Shrinker[rune], n)
		for i := 0; i < n; i++ {
			c := rune(alphabet[r.Intn(len(alphabet))])
			runes[i], shks[i] = c, charShrink(c)
		}

		return string(runes), stringShrink(collectionShrink(runes, shks))
	}, func(s string) Shrinker[string] {
		runes := []rune(s)
		shks := make([]Shrinker[rune], len(runes))
		for i, c := range runes {
			shks[i] = charShrink(c)
		}
		return stringShrink(collectionShrink(runes, shks))
	})
}

// stringShrink adapts a []rune Shrinker into a string Shrinker by
// repacking each candidate.
func stringShrink(runeShrink Shrinker[[]rune]) Shrinker[string] {
	return func() (string, bool) {
		rs, ok := runeShrink()
		if !ok {
			return "", false
		}
		return string(rs), true
	}
}

// Syntactic sugars.
func StringAlpha(size Size) Generator[string]    { return String(AlphabetAlpha, size) }
func StringAlphaNum(size Size) Generator[string] { return String(AlphabetAlphaNum, size) }
func StringDigits(size Size) Generator[string]   { return String(AlphabetDigits, size) }
func StringASCII(size Size) Generator[string]    { return String(AlphabetASCII, size) }
