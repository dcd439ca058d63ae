package rfield

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"dash-savior/ds"
)

// Tokenize splits text on separator and reads the tokens two at a time as
// (code, value) pairs. A trailing code without a value is dropped. Values made
// only of decimal digits become ints, everything else stays a string; leading
// zeroes are therefore not preserved.
//
// An empty separator is a programming error and panics.
func Tokenize(text string, separator string) *FieldMap {
	if separator == "" {
		panic(ds.ErrUnreachableCode{Caller: "rfield.Tokenize", Detail: "empty separator"})
	}
	fieldMap := newFieldMap()
	if text == "" {
		return fieldMap
	}
	pairs := ds.MakeChunks(strings.Split(text, separator), 2)
	lo.ForEach(
		pairs,
		func(pair []string, _ int) {
			if len(pair) != 2 {
				return
			}
			fieldMap.lhm.Put(pair[0], CoerceValue(pair[1]))
		},
	)
	return fieldMap
}

// CoerceValue turns a raw token into an int when it consists solely of ASCII
// digits and fits in an int; otherwise the token is returned as is.
func CoerceValue(token string) any {
	if !IsDigits(token) {
		return token
	}
	i, err := strconv.Atoi(token)
	if err != nil {
		// too large for an int, keep the text intact
		return token
	}
	return i
}

func IsDigits(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}

// ParseIntList reads comma separated integers such as "1,2,3"; items that are
// not plain digits are skipped.
func ParseIntList(text string) []int {
	if text == "" {
		return []int{}
	}
	return lo.FilterMap(
		strings.Split(text, ","),
		func(item string, _ int) (int, bool) {
			if !IsDigits(item) {
				return 0, false
			}
			i, err := strconv.Atoi(item)
			return i, err == nil
		},
	)
}
