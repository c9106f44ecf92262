package winprob

import (
	"fmt"

	"github.com/markdias/shutbox/tiles"
)

// OneDiePolicy is the house rule for when a player may roll a single
// die instead of two. It is always evaluated against the current open
// set, never the original board, since eligibility changes as tiles
// shut.
type OneDiePolicy uint8

const (
	// OneDieNever always requires two dice.
	OneDieNever OneDiePolicy = iota
	// OneDieWhenMaxOpenAtMostSix allows one die once every open tile
	// is 6 or lower.
	OneDieWhenMaxOpenAtMostSix
	// OneDieWhenSumBelowSix allows one die once the open values sum to
	// less than 6.
	OneDieWhenSumBelowSix
)

// Permits reports whether a single die may be rolled for the given open
// set.
func (p OneDiePolicy) Permits(mask tiles.ValueMask) bool {
	switch p {
	case OneDieWhenMaxOpenAtMostSix:
		return mask != 0 && mask.MaxValue() <= 6
	case OneDieWhenSumBelowSix:
		return mask.Sum() < 6
	}
	return false
}

func (p OneDiePolicy) String() string {
	switch p {
	case OneDieNever:
		return "never"
	case OneDieWhenMaxOpenAtMostSix:
		return "max-open-six"
	case OneDieWhenSumBelowSix:
		return "sum-below-six"
	}
	return fmt.Sprintf("OneDiePolicy(%d)", uint8(p))
}

// ParsePolicy maps a config string to its policy.
func ParsePolicy(s string) (OneDiePolicy, error) {
	switch s {
	case "never":
		return OneDieNever, nil
	case "max-open-six":
		return OneDieWhenMaxOpenAtMostSix, nil
	case "sum-below-six":
		return OneDieWhenSumBelowSix, nil
	}
	return OneDieNever, fmt.Errorf("unknown one-die policy %q", s)
}
