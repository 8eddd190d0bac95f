package prop

import (
	"flag"
	"time"

	"github.com/kaelor/qcheck/gen"
)

// Config holds the configuration for a single Check run.
type Config struct {
	// Seed is the random seed used for test case generation. If zero,
	// a seed derived from wall-clock time is used instead.
	Seed int64

	// Tries is the number of Generate-phase iterations to run before
	// declaring success.
	Tries int

	// MaxShrink bounds the number of shrink candidates tried once a
	// failure is found.
	MaxShrink int

	// ShrinkStrat selects how the shrink search schedules work across
	// recorded draws: "bfs" (one refinement step per draw, round-robin)
	// or "dfs" (each draw to its fixed point in turn).
	ShrinkStrat string

	// Size bounds the magnitude/length of generated values for this
	// check. The zero value defaults to gen.Size{Min: 0, Max: 10}.
	Size gen.Size

	// Label identifies the property in console reports and in the
	// PropertyFailed it raises.
	Label string
}

var (
	flagSeed        = flag.Int64("qcheck.seed", 0, "random seed for test case generation")
	flagTries       = flag.Int("qcheck.tries", 100, "number of test cases to generate")
	flagMaxShrink   = flag.Int("qcheck.maxshrink", 400, "maximum number of shrink candidates to try")
	flagShrinkStrat = flag.String("qcheck.shrink.strategy", "bfs", "shrink search schedule across draws (bfs or dfs)")
)

// Default returns a Config seeded from command-line flags, following
// the same -qcheck.* flag convention for every field.
func Default() Config {
	return Config{
		Seed:        *flagSeed,
		Tries:       *flagTries,
		MaxShrink:   *flagMaxShrink,
		ShrinkStrat: *flagShrinkStrat,
		Size:        gen.Size{Min: 0, Max: 10},
	}
}

func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c Config) effectiveSize() gen.Size {
	if c.Size.Min == 0 && c.Size.Max == 0 {
		return gen.Size{Min: 0, Max: 10}
	}
	return c.Size
}

func (c Config) effectiveTries() int {
	if c.Tries <= 0 {
		return 100
	}
	return c.Tries
}

func (c Config) effectiveMaxShrink() int {
	if c.MaxShrink <= 0 {
		return 400
	}
	return c.MaxShrink
}

func (c Config) effectiveLabel() string {
	if c.Label == "" {
		return "property"
	}
	return c.Label
}
