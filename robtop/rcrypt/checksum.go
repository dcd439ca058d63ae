package rcrypt

import (
	"crypto/sha1"
	_ "embed"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"dash-savior/ds"
	"dash-savior/robtop/rfield"
)

type (
	Endpoint struct {
		Name   string   `toml:"-"`
		Key    string   `toml:"key"`
		Salt   string   `toml:"salt"`
		Fields []string `toml:"fields"`
	}
	MissingChecksumFieldError struct {
		Endpoint string
		Field    string
	}
)

const (
	EndpointUploadComment   = "upload_comment"
	EndpointLikeItem        = "like_item"
	EndpointRateStars       = "rate_stars"
	EndpointUploadLevel     = "upload_level"
	EndpointUpdateUserScore = "update_user_score"
	EndpointLevelScores     = "level_scores"
)

//go:embed endpoints.toml
var endpointsTOML string

var endpointByName map[string]Endpoint

func init() {
	table := map[string]Endpoint{}
	if _, err := toml.Decode(endpointsTOML, &table); err != nil {
		panic(errors.Wrap(err, "rcrypt: decode embedded endpoints"))
	}
	endpointByName = lo.MapValues(
		table,
		func(endpoint Endpoint, name string) Endpoint {
			endpoint.Name = name
			return endpoint
		},
	)
}

func (r MissingChecksumFieldError) Error() string {
	return fmt.Sprintf(`checksum for endpoint "%s" is missing field "%s"`, r.Endpoint, r.Field)
}

// GenerateChecksum appends salt to values, concatenates their string forms,
// hashes the result with SHA-1, XORs the hex digest against key and returns
// the URL-safe base64 of that. The caller's slice is left untouched.
//
// Nothing is validated here: a wrong key, salt or order only shows up as a
// rejection from the service.
func GenerateChecksum(values []any, key string, salt string) string {
	values = append(ds.ShallowCopy(values), salt)
	combined := strings.Join(
		lo.Map(
			values,
			func(value any, _ int) string {
				return rfield.Text(value)
			},
		),
		"",
	)
	digest := sha1.Sum([]byte(combined))
	hexDigest := hex.EncodeToString(digest[:])
	xored := XORChars([]byte(hexDigest), key)
	return base64.URLEncoding.EncodeToString([]byte(xored))
}

func LookupEndpoint(name string) (Endpoint, bool) {
	endpoint, ok := endpointByName[name]
	return endpoint, ok
}

func MustLookupEndpoint(name string) Endpoint {
	endpoint, ok := LookupEndpoint(name)
	if !ok {
		panic(ds.ErrUnreachableCode{Caller: "rcrypt.MustLookupEndpoint", Detail: name})
	}
	return endpoint
}

func EndpointNames() []string {
	names := lo.Keys(endpointByName)
	sort.Strings(names)
	return names
}

// Values lays params out in the endpoint's field order.
func (r Endpoint) Values(params map[string]any) ([]any, error) {
	values := make([]any, 0, len(r.Fields))
	for _, field := range r.Fields {
		value, ok := params[field]
		if !ok {
			return nil, MissingChecksumFieldError{Endpoint: r.Name, Field: field}
		}
		values = append(values, value)
	}
	return values, nil
}

func (r Endpoint) Checksum(params map[string]any) (string, error) {
	values, err := r.Values(params)
	if err != nil {
		return "", err
	}
	return GenerateChecksum(values, r.Key, r.Salt), nil
}
