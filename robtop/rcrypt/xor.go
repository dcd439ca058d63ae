package rcrypt

import (
	"fmt"

	"dash-savior/ds"
)

// CyclicXOR XORs every byte of input against key, repeating key as needed.
// Both the XOR decode scheme and the request checksum go through it.
func CyclicXOR(input []byte, key []byte) []byte {
	if len(key) == 0 {
		panic(ds.ErrUnreachableCode{Caller: "rcrypt.CyclicXOR", Detail: "empty key"})
	}
	output := make([]byte, len(input))
	for i, b := range input {
		output[i] = b ^ key[i%len(key)]
	}
	return output
}

// ToChars turns every byte into the character with that code point. XOR output
// is not UTF-8 and the service expects exactly this byte-to-character reading,
// so bytes >= 0x80 become two byte UTF-8 sequences in the result.
func ToChars(bs []byte) string {
	runes := make([]rune, len(bs))
	for i, b := range bs {
		runes[i] = rune(b)
	}
	return string(runes)
}

// FromChars is the inverse of ToChars.
func FromChars(s string) ([]byte, error) {
	bs := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return nil, fmt.Errorf(`FromChars error: character %q is outside of one byte range`, r)
		}
		bs = append(bs, byte(r))
	}
	return bs, nil
}

// XORChars is CyclicXOR followed by ToChars.
func XORChars(input []byte, key string) string {
	return ToChars(CyclicXOR(input, []byte(key)))
}
