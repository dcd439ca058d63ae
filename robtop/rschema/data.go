// Package rschema declares which fields of each entity kind are encoded and
// how, so decoding is driven by one inspectable table instead of call sites.
package rschema

import (
	"fmt"

	"dash-savior/robtop/rcrypt"
)

type (
	Kind string

	Rule struct {
		Scheme rcrypt.Scheme
		Key    rcrypt.XorKey
		// Required rules fail the whole entity when the field is absent or
		// does not decode. Optional fields are dropped instead.
		Required bool
		// Verbatim lists sentinel values that are kept as they are.
		Verbatim []any
	}
	Schema map[string]Rule

	MissingFieldError struct {
		Kind Kind
		Code string
	}
)

const (
	KindLevelSummary  = Kind("level_summary")
	KindLevelDownload = Kind("level_download")
	KindComment       = Kind("comment")
	KindSong          = Kind("song")
	KindUser          = Kind("user")
)

const (
	FieldLevelDescription = "3"
	FieldLevelData        = "4"
	FieldLevelPassword    = "27"
	FieldCommentContent   = "2"
)

var (
	levelDescriptionRule = Rule{Scheme: rcrypt.SchemeBase64}
	levelPasswordRule    = Rule{
		Scheme:   rcrypt.SchemeXOR,
		Key:      rcrypt.XorKeyLevelPassword,
		Verbatim: []any{0, rcrypt.FreeCopyCode},
	}

	schemas = map[Kind]Schema{
		KindLevelSummary: {
			FieldLevelDescription: levelDescriptionRule,
			FieldLevelPassword:    levelPasswordRule,
		},
		KindLevelDownload: {
			FieldLevelDescription: levelDescriptionRule,
			FieldLevelData:        {Scheme: rcrypt.SchemeBase64Inflate, Required: true},
			FieldLevelPassword:    levelPasswordRule,
		},
		KindComment: {
			FieldCommentContent: {Scheme: rcrypt.SchemeBase64},
		},
		// Song download links are percent-encoded, which is a transport concern
		// handled by the record constructor.
		KindSong: {},
		KindUser: {},
	}
)

func (r MissingFieldError) Error() string {
	return fmt.Sprintf(`required field "%s" of %s is missing`, r.Code, r.Kind)
}

// Lookup returns the schema of kind. The returned map is shared and must not
// be modified.
func Lookup(kind Kind) (Schema, bool) {
	schema, ok := schemas[kind]
	return schema, ok
}

func Kinds() []Kind {
	return []Kind{
		KindLevelSummary,
		KindLevelDownload,
		KindComment,
		KindSong,
		KindUser,
	}
}
