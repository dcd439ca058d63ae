package rcrypt

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/base64"
	"io"
	"strings"

	"github.com/pkg/errors"

	"dash-savior/ds"
)

var (
	gzipMagicBytes = []byte{0x1f, 0x8b}
)

// AddPadding appends "=" until the length is a multiple of 4.
func AddPadding(data string) string {
	return data + strings.Repeat("=", ds.NearestDivisibleByM(len(data), 4)-len(data))
}

// Decode applies scheme to raw. Key is only read by SchemeXOR.
//
// Every failure, including empty input, is returned as a DecodeError; whether
// a failing field is optional is up to the caller.
func Decode(raw string, scheme Scheme, key string) (string, error) {
	if raw == "" {
		return "", DecodeError{Scheme: scheme, Err: ErrEmptyInput}
	}
	switch scheme {
	case SchemePlain:
		return raw, nil
	case SchemeBase64:
		bs, err := DecodeBase64URL(raw)
		if err != nil {
			return "", DecodeError{Scheme: scheme, Err: err}
		}
		return string(bs), nil
	case SchemeBase64Inflate:
		bs, err := DecodeBase64URL(raw)
		if err != nil {
			return "", DecodeError{Scheme: scheme, Err: err}
		}
		inflated, err := Inflate(bs)
		if err != nil {
			return "", DecodeError{Scheme: scheme, Err: err}
		}
		return string(inflated), nil
	case SchemeXOR:
		if key == "" {
			return "", DecodeError{Scheme: scheme, Err: ErrEmptyKey}
		}
		bs, err := DecodeBase64Std(raw)
		if err != nil {
			return "", DecodeError{Scheme: scheme, Err: err}
		}
		return XORChars(bs, key), nil
	}
	err := errors.Errorf(`Decode error: unknown scheme "%s"`, scheme)
	return "", DecodeError{Scheme: scheme, Err: err}
}

func DecodeBytes(raw []byte, scheme Scheme, key string) (string, error) {
	return Decode(string(raw), scheme, key)
}

// DecodeBase64URL accepts both alphabets the way the service's clients do, and
// missing padding.
func DecodeBase64URL(raw string) ([]byte, error) {
	normalized := strings.NewReplacer("+", "-", "/", "_").Replace(strings.TrimSpace(raw))
	bs, err := base64.URLEncoding.DecodeString(AddPadding(normalized))
	if err != nil {
		return nil, errors.Wrap(err, "DecodeBase64URL error")
	}
	return bs, nil
}

func DecodeBase64Std(raw string) ([]byte, error) {
	bs, err := base64.StdEncoding.DecodeString(AddPadding(strings.TrimSpace(raw)))
	if err != nil {
		return nil, errors.Wrap(err, "DecodeBase64Std error")
	}
	return bs, nil
}

// Inflate detects a gzip wrapper by its magic bytes and falls back to zlib.
func Inflate(bs []byte) ([]byte, error) {
	var (
		reader io.ReadCloser
		err    error
	)
	if bytes.HasPrefix(bs, gzipMagicBytes) {
		reader, err = gzip.NewReader(bytes.NewReader(bs))
	} else {
		reader, err = zlib.NewReader(bytes.NewReader(bs))
	}
	if err != nil {
		return nil, errors.Wrap(err, "Inflate error: read compression header")
	}
	defer reader.Close()

	inflated, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "Inflate error: read compressed body")
	}
	return inflated, nil
}
