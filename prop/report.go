package prop

import (
	"fmt"
	"os"
	"sort"
)

func stringifyClass(v any) string {
	return fmt.Sprintf("%v", v)
}

// isTerminal reports whether stdout looks like an interactive
// terminal, gating the ANSI-colored falsifiable line.
func isTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

const ansiRed = "\x1b[31m"
const ansiReset = "\x1b[0m"

func red(s string) string {
	if !isTerminal() {
		return s
	}
	return ansiRed + s + ansiReset
}

// reportSuccess prints the stable console report for a check that ran
// to completion without a failure: the pass/discard summary line,
// followed by the classification distribution if any buckets were
// populated.
func reportSuccess(s *TestState) {
	fmt.Printf("'%s' passed %d tests. Discarded: %d\n", s.Label, s.SuccessCount, s.DiscardCount)
	if len(s.Classes) == 0 {
		return
	}
	total := 0
	for _, c := range s.Classes {
		total += c
	}
	keys := append([]string(nil), s.ClassOrder...)
	sort.Strings(keys)
	fmt.Println("Test case distribution:")
	for _, k := range keys {
		pct := 100 * float64(s.Classes[k]) / float64(total)
		fmt.Printf("%s: %.2f%%\n", k, pct)
	}
}

// reportFalsifiable prints the red-toned falsifiable line once a
// failure is found during Generate, before shrinking begins.
func reportFalsifiable(examplesRun int) {
	fmt.Println(red(fmt.Sprintf("Falsifiable after %d tests. Shrinking input.", examplesRun)))
}

// reportProgress prints one progress dot per accepted shrink
// candidate.
func reportProgress() {
	fmt.Print(".")
}
