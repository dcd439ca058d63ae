package rdiff

import (
	"dash-savior/robtop/rfield"
)

const (
	FieldDifficultyNumerator = "9"
	FieldIsDemon             = "17"
	FieldIsAuto              = "25"
	FieldDemonDifficulty     = "43"
)

type (
	// DetailFields are the level fields the difficulty depends on.
	DetailFields struct {
		IsDemon            bool
		IsAuto             bool
		HasDemonDifficulty bool
		DemonDifficulty    int
		RawDifficulty      int
	}
)

// Resolve decides the difficulty of a level:
//
//   - a demon maps its field 43 through the demon detail table,
//   - otherwise an auto level is DifficultyAuto,
//   - otherwise field 9 / 10 selects one of the six non-demon tiers.
//
// A demon without a numeric field 43 is an InvalidDifficultyCodeError with a
// nil Value rather than a guessed tier.
func Resolve(fields DetailFields) (Difficulty, error) {
	switch {
	case fields.IsDemon && !fields.HasDemonDifficulty:
		return "", InvalidDifficultyCodeError{Table: TableDemonDetail, Value: nil}
	case fields.IsDemon:
		return DecodeDemonSubtier(fields.DemonDifficulty)
	case fields.IsAuto:
		return DifficultyAuto, nil
	default:
		return DecodeDetailTier(fields.RawDifficulty)
	}
}

func DetailFieldsOf(fieldMap *rfield.FieldMap) DetailFields {
	demonDifficulty, hasDemonDifficulty := fieldMap.GetInt(FieldDemonDifficulty)
	return DetailFields{
		IsDemon:            fieldMap.Truthy(FieldIsDemon),
		IsAuto:             fieldMap.Truthy(FieldIsAuto),
		HasDemonDifficulty: hasDemonDifficulty,
		DemonDifficulty:    demonDifficulty,
		RawDifficulty:      fieldMap.IntOr(FieldDifficultyNumerator, 0),
	}
}

func ResolveFieldMap(fieldMap *rfield.FieldMap) (Difficulty, error) {
	return Resolve(DetailFieldsOf(fieldMap))
}
