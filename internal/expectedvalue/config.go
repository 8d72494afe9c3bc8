// Package expectedvalue implements the expected-score DAG search of
// spec §4.6: an alternating draw/discard graph over reachable hand
// states, memoized by the 128-bit hand key, with a turn-indexed
// backward recurrence that propagates tenpai-probability,
// win-probability, and expected-value back to the root.
package expectedvalue

// Config carries the search's back-compatibility knobs, per spec
// §4.6/§6.
type Config struct {
	EnableShantenDown bool
	EnableTegawari    bool
	EnableRedDora     bool
	EnableUraDora     bool
	EnableRiichi      bool

	Extra int // shanten-down budget
	TMin  int
	TMax  int
	Sum   int // effective wall denominator, typically 121
}

// DefaultConfig mirrors the spec's stated typical values.
func DefaultConfig() Config {
	return Config{
		EnableShantenDown: true,
		EnableTegawari:    true,
		TMin:              0,
		TMax:              17,
		Sum:               121,
	}
}

// shantenBudget returns the allowed transient distance-increase budget
// for the current search, per spec §4.6 ("default 1 for far-from-
// tenpai hands, 2 when within one of tenpai").
func (c Config) shantenBudget(currentDistance int) int {
	if !c.EnableShantenDown {
		return 0
	}
	if c.Extra > 0 {
		return c.Extra
	}
	if currentDistance <= 1 {
		return 2
	}
	return 1
}
