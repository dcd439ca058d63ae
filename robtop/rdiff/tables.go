package rdiff

import (
	"github.com/samber/lo"

	"dash-savior/ds"
)

const (
	ListCodeMin = -1
	ListCodeMax = 10
)

// Search request "diff" parameter.
var requestCodeByDifficulty = map[Difficulty]int{
	DifficultyNA:     -1,
	DifficultyDemon:  -2,
	DifficultyAuto:   -3,
	DifficultyEasy:   1,
	DifficultyNormal: 2,
	DifficultyHard:   3,
	DifficultyHarder: 4,
	DifficultyInsane: 5,
}

// Flat difficulty number of level lists, demons included.
var difficultyByListCode = map[int]Difficulty{
	-1: DifficultyNA,
	0:  DifficultyAuto,
	1:  DifficultyEasy,
	2:  DifficultyNormal,
	3:  DifficultyHard,
	4:  DifficultyHarder,
	5:  DifficultyInsane,
	6:  DifficultyEasyDemon,
	7:  DifficultyMediumDemon,
	8:  DifficultyHardDemon,
	9:  DifficultyInsaneDemon,
	10: DifficultyExtremeDemon,
}

// Search request "demonFilter" parameter.
var demonFilterCodeByDifficulty = map[Difficulty]int{
	DifficultyEasyDemon:    1,
	DifficultyMediumDemon:  2,
	DifficultyHardDemon:    3,
	DifficultyInsaneDemon:  4,
	DifficultyExtremeDemon: 5,
}

// Level field 43. Hard demon is 0, which is also what old levels carry.
var difficultyByDemonDetailCode = map[int]Difficulty{
	3: DifficultyEasyDemon,
	4: DifficultyMediumDemon,
	0: DifficultyHardDemon,
	5: DifficultyInsaneDemon,
	6: DifficultyExtremeDemon,
}

// Level field 9 divided by 10.
var difficultyByDetailTier = map[int]Difficulty{
	0: DifficultyNA,
	1: DifficultyEasy,
	2: DifficultyNormal,
	3: DifficultyHard,
	4: DifficultyHarder,
	5: DifficultyInsane,
}

var (
	difficultyByRequestCode     = lo.Invert(requestCodeByDifficulty)
	listCodeByDifficulty        = lo.Invert(difficultyByListCode)
	difficultyByDemonFilterCode = lo.Invert(demonFilterCodeByDifficulty)
	demonDetailCodeByDifficulty = lo.Invert(difficultyByDemonDetailCode)
	detailTierByDifficulty      = lo.Invert(difficultyByDetailTier)
)

func lookup[K comparable, V any](table Table, m map[K]V, key K) (V, error) {
	value, ok := m[key]
	if !ok {
		var zero V
		return zero, InvalidDifficultyCodeError{Table: table, Value: key}
	}
	return value, nil
}

func EncodeRequestDifficulty(difficulty Difficulty) (int, error) {
	return lookup(TableRequest, requestCodeByDifficulty, difficulty)
}

func DecodeRequestDifficulty(code int) (Difficulty, error) {
	return lookup(TableRequest, difficultyByRequestCode, code)
}

func EncodeListDifficulty(difficulty Difficulty) (int, error) {
	return lookup(TableList, listCodeByDifficulty, difficulty)
}

// ListCodes enumerates every valid list difficulty code in order.
func ListCodes() []int {
	return ds.MakeRange(ListCodeMin, ListCodeMax+1, 1)
}

func DecodeListDifficulty(code int) (Difficulty, error) {
	return lookup(TableList, difficultyByListCode, code)
}

func EncodeDemonFilter(difficulty Difficulty) (int, error) {
	return lookup(TableDemonFilter, demonFilterCodeByDifficulty, difficulty)
}

func DecodeDemonFilter(code int) (Difficulty, error) {
	return lookup(TableDemonFilter, difficultyByDemonFilterCode, code)
}

func EncodeDemonSubtier(difficulty Difficulty) (int, error) {
	return lookup(TableDemonDetail, demonDetailCodeByDifficulty, difficulty)
}

func DecodeDemonSubtier(code int) (Difficulty, error) {
	return lookup(TableDemonDetail, difficultyByDemonDetailCode, code)
}

func EncodeDetailTier(difficulty Difficulty) (int, error) {
	return lookup(TableDetailTier, detailTierByDifficulty, difficulty)
}

// DecodeDetailTier takes the raw field value, not the tier: 30 is hard.
func DecodeDetailTier(rawDifficulty int) (Difficulty, error) {
	if rawDifficulty < 0 {
		return "", InvalidDifficultyCodeError{Table: TableDetailTier, Value: rawDifficulty}
	}
	return lookup(TableDetailTier, difficultyByDetailTier, rawDifficulty/10)
}
