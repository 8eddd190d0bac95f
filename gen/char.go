package gen

import "unicode"

const charCandidates = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	" \t\n"

// Char generates a single rune uniformly from a fixed candidate set:
// uppercase letters, lowercase letters, digits, punctuation, space,
// tab, and newline.
func Char() Generator[rune] {
	return FromReshrinkable(func(r *Rand, _ Size) (rune, Shrinker[rune]) {
		c := rune(charCandidates[r.Intn(len(charCandidates))])
		return c, charShrink(c)
	}, charShrink)
}

// charShrink enumerates the fixed candidate list [a, b, A, B, 1, 2,
// tolower(c), space], keeping only the candidates that are strictly
// simpler than c: lowercase when c isn't, uppercase when c isn't, a
// digit when c isn't, space when c isn't, any other whitespace when c
// isn't, or — within the same kind as c — a smaller character code.
func charShrink(c rune) Shrinker[rune] {
	cands := []rune{'a', 'b', 'A', 'B', '1', '2', unicode.ToLower(c), ' '}
	queue := make([]rune, 0, len(cands))
	seen := map[rune]struct{}{c: {}}
	for _, x := range cands {
		if _, ok := seen[x]; ok {
			continue
		}
		if !simplerRune(x, c) {
			continue
		}
		seen[x] = struct{}{}
		queue = append(queue, x)
	}
	return queueShrinker(queue)
}

func simplerRune(x, c rune) bool {
	switch {
	case unicode.IsLower(x) && !unicode.IsLower(c):
		return true
	case unicode.IsUpper(x) && !unicode.IsUpper(c):
		return true
	case unicode.IsDigit(x) && !unicode.IsDigit(c):
		return true
	case x == ' ' && c != ' ':
		return true
	case unicode.IsSpace(x) && !unicode.IsSpace(c):
		return true
	default:
		return x < c
	}
}
