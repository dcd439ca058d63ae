// Package rcrypt holds the payload decode schemes, the cyclic XOR cipher they
// share with the request checksum, and the per-endpoint checksum table.
package rcrypt

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	Scheme string
	XorKey string

	DecodeError struct {
		Scheme Scheme
		Err    error
	}
)

const (
	// SchemePlain leaves the value as it is.
	SchemePlain = Scheme("plain")
	// SchemeBase64 is URL-safe base64 with the padding restored before decoding.
	SchemeBase64 = Scheme("base64")
	// SchemeBase64Inflate is SchemeBase64 followed by a zlib or gzip inflate.
	SchemeBase64Inflate = Scheme("base64+inflate")
	// SchemeXOR is standard base64 followed by the cyclic XOR cipher.
	SchemeXOR = Scheme("xor")
)

const (
	XorKeyLevelPassword = XorKey("26364")
	XorKeyGJP           = XorKey("37526")
	XorKeyComment       = XorKey("29481")
	XorKeyLike          = XorKey("58281")
	XorKeyQuest         = XorKey("19847")
	XorKeyChest         = XorKey("59182")
)

const (
	// SaltGJP2 is appended to the account password before hashing it into GJP2.
	SaltGJP2 = "mI29fmAnxgTs"
	// FreeCopyCode is the encoded level password meaning "copyable without a password".
	FreeCopyCode = "Aw=="
)

var (
	ErrEmptyInput = errors.New("empty input")
	ErrEmptyKey   = errors.New("empty XOR key")
)

func (r DecodeError) Error() string {
	return fmt.Sprintf(`decode "%s" payload error: %v`, r.Scheme, r.Err)
}

func (r DecodeError) Unwrap() error {
	return r.Err
}

// Cause lets errors.Cause reach the underlying base64 or inflate failure.
func (r DecodeError) Cause() error {
	return r.Err
}
