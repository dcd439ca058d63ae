// Package rdiff maps logical difficulties to and from the numeric codes the
// service uses. The codes live in separate tables because the same difficulty
// has a different number in each of them; converting always goes through the
// logical Difficulty, never from one table's number to another's.
package rdiff

import (
	"fmt"
)

type (
	Difficulty string
	// Table names a coding space; it is carried by InvalidDifficultyCodeError.
	Table string

	InvalidDifficultyCodeError struct {
		Table Table
		Value any
	}
	InvalidFilterCombinationError struct {
		Reason string
	}
)

const (
	DifficultyNA     = Difficulty("n/a")
	DifficultyAuto   = Difficulty("auto")
	DifficultyEasy   = Difficulty("easy")
	DifficultyNormal = Difficulty("normal")
	DifficultyHard   = Difficulty("hard")
	DifficultyHarder = Difficulty("harder")
	DifficultyInsane = Difficulty("insane")
	// DifficultyDemon is the umbrella over the five demon tiers, used by search
	// requests and by callers that do not care about the tier.
	DifficultyDemon        = Difficulty("demon")
	DifficultyEasyDemon    = Difficulty("easy_demon")
	DifficultyMediumDemon  = Difficulty("medium_demon")
	DifficultyHardDemon    = Difficulty("hard_demon")
	DifficultyInsaneDemon  = Difficulty("insane_demon")
	DifficultyExtremeDemon = Difficulty("extreme_demon")
)

const (
	TableRequest     = Table("request")
	TableList        = Table("list")
	TableDemonFilter = Table("demon_filter")
	TableDemonDetail = Table("demon_detail")
	TableDetailTier  = Table("detail_tier")
)

var (
	DemonTiers = []Difficulty{
		DifficultyEasyDemon,
		DifficultyMediumDemon,
		DifficultyHardDemon,
		DifficultyInsaneDemon,
		DifficultyExtremeDemon,
	}
)

func (r InvalidDifficultyCodeError) Error() string {
	return fmt.Sprintf(`invalid difficulty code %v for table "%s"`, r.Value, r.Table)
}

func (r InvalidFilterCombinationError) Error() string {
	return fmt.Sprintf("invalid difficulty filter: %s", r.Reason)
}

// IsDemon reports whether r is the demon umbrella or one of its tiers.
func (r Difficulty) IsDemon() bool {
	if r == DifficultyDemon {
		return true
	}
	for _, tier := range DemonTiers {
		if r == tier {
			return true
		}
	}
	return false
}

// Umbrella folds the demon tiers into DifficultyDemon.
func (r Difficulty) Umbrella() Difficulty {
	if r.IsDemon() {
		return DifficultyDemon
	}
	return r
}
