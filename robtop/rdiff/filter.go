package rdiff

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type (
	// SearchFilter holds the encoded "diff" and "demonFilter" search parameters.
	// DemonFilter is 0 when no tier is requested.
	SearchFilter struct {
		Diff        string
		DemonFilter int
	}
)

const (
	AnyDifficulty = "-"
)

// NewSearchFilter validates the combination before encoding it:
//
//   - the demon umbrella can not be mixed with other difficulties,
//   - a demon tier is only accepted as demonTier, together with the umbrella
//     or on its own,
//   - demonTier must be a demon tier.
//
// No difficulties at all means any difficulty.
func NewSearchFilter(difficulties []Difficulty, demonTier Difficulty) (*SearchFilter, error) {
	difficulties = lo.Uniq(difficulties)
	if demonTier != "" {
		if !demonTier.IsDemon() || demonTier == DifficultyDemon {
			return nil, InvalidFilterCombinationError{Reason: `demon tier "` + string(demonTier) + `" is not a demon tier`}
		}
		if len(difficulties) == 0 {
			difficulties = []Difficulty{DifficultyDemon}
		}
		if len(difficulties) != 1 || difficulties[0] != DifficultyDemon {
			return nil, InvalidFilterCombinationError{Reason: "a demon tier can only be combined with the demon difficulty"}
		}
	}
	if lo.Contains(difficulties, DifficultyDemon) && len(difficulties) > 1 {
		return nil, InvalidFilterCombinationError{Reason: "the demon difficulty can not be combined with other difficulties"}
	}
	if tier, found := lo.Find(difficulties, func(d Difficulty) bool { return d.IsDemon() && d != DifficultyDemon }); found {
		return nil, InvalidFilterCombinationError{Reason: `demon tier "` + string(tier) + `" must be passed as the demon tier`}
	}

	filter := SearchFilter{Diff: AnyDifficulty}
	if len(difficulties) > 0 {
		codes := make([]string, 0, len(difficulties))
		for _, difficulty := range difficulties {
			code, err := EncodeRequestDifficulty(difficulty)
			if err != nil {
				return nil, err
			}
			codes = append(codes, strconv.Itoa(code))
		}
		filter.Diff = strings.Join(codes, ",")
	}
	if demonTier != "" {
		code, err := EncodeDemonFilter(demonTier)
		if err != nil {
			return nil, err
		}
		filter.DemonFilter = code
	}
	return &filter, nil
}

// Params renders the filter as request parameters.
func (r SearchFilter) Params() map[string]string {
	params := map[string]string{"diff": r.Diff}
	if r.DemonFilter != 0 {
		params["demonFilter"] = strconv.Itoa(r.DemonFilter)
	}
	return params
}
