package rfield

import (
	"strings"

	"github.com/samber/lo"

	"dash-savior/ds"
)

// Untokenize interleaves codes and values joined by separator. It is the
// inverse of Tokenize for every map Tokenize produces, except for numbers
// whose original text had leading zeroes.
func Untokenize(fieldMap *FieldMap, separator string) string {
	if separator == "" {
		panic(ds.ErrUnreachableCode{Caller: "rfield.Untokenize", Detail: "empty separator"})
	}
	tokens := lo.FlatMap(
		fieldMap.Codes(),
		func(code string, _ int) []string {
			value, _ := fieldMap.Get(code)
			return []string{code, Text(value)}
		},
	)
	return strings.Join(tokens, separator)
}
