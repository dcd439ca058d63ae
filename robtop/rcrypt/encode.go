package rcrypt

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"

	"github.com/pkg/errors"
)

// Encode is the inverse of Decode. SchemeBase64Inflate output is gzip wrapped,
// which is what the game client uploads.
func Encode(text string, scheme Scheme, key string) (string, error) {
	switch scheme {
	case SchemePlain:
		return text, nil
	case SchemeBase64:
		return base64.URLEncoding.EncodeToString([]byte(text)), nil
	case SchemeBase64Inflate:
		deflated, err := Deflate([]byte(text))
		if err != nil {
			return "", err
		}
		return base64.URLEncoding.EncodeToString(deflated), nil
	case SchemeXOR:
		if key == "" {
			return "", ErrEmptyKey
		}
		bs, err := FromChars(text)
		if err != nil {
			return "", errors.Wrap(err, "Encode error")
		}
		return base64.StdEncoding.EncodeToString(CyclicXOR(bs, []byte(key))), nil
	}
	return "", errors.Errorf(`Encode error: unknown scheme "%s"`, scheme)
}

func Deflate(bs []byte) ([]byte, error) {
	buf := bytes.Buffer{}
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(bs); err != nil {
		return nil, errors.Wrap(err, "Deflate error: write body")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "Deflate error: flush")
	}
	return buf.Bytes(), nil
}
