package rschema

import (
	"github.com/pkg/errors"

	"dash-savior/robtop/rcrypt"
	"dash-savior/robtop/rfield"
)

// Apply decodes the encoded fields of fieldMap according to the schema of
// kind and returns a new FieldMap. Decoded values are always strings.
func Apply(kind Kind, fieldMap *rfield.FieldMap) (*rfield.FieldMap, error) {
	schema, ok := Lookup(kind)
	if !ok {
		return nil, errors.Errorf("Apply error: unknown kind %s", kind)
	}
	for code, rule := range schema {
		if rule.Required && !fieldMap.Has(code) {
			return nil, MissingFieldError{Kind: kind, Code: code}
		}
	}

	return fieldMap.Transform(func(code string, value any) (any, bool, error) {
		rule, ok := schema[code]
		if !ok || rule.Scheme == rcrypt.SchemePlain {
			return value, true, nil
		}
		if rule.isVerbatim(value) {
			return value, true, nil
		}
		// Tokenize has already coerced digit-only tokens, so an encoded value
		// like "0000" arrives here as "0" and no longer decodes.
		decoded, err := rcrypt.Decode(rfield.Text(value), rule.Scheme, string(rule.Key))
		if err == nil {
			return decoded, true, nil
		}
		if rule.Required {
			return nil, false, errors.Wrapf(err, "Apply error: field %s of %s", code, kind)
		}
		return nil, false, nil
	})
}

func (r Rule) isVerbatim(value any) bool {
	for _, verbatim := range r.Verbatim {
		if verbatim == value {
			return true
		}
	}
	return false
}
