package rcrypt

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	levelSeedSampleSize = 50
	udidPrefix          = "S15"
)

var (
	seedAlphabet = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
)

// EncodeGJP is the legacy password parameter: the password XORed with the GJP
// key, in URL-safe base64.
func EncodeGJP(password string) string {
	xored := XORChars([]byte(password), string(XorKeyGJP))
	return base64.URLEncoding.EncodeToString([]byte(xored))
}

func DecodeGJP(gjp string) (string, error) {
	bs, err := DecodeBase64URL(gjp)
	if err != nil {
		return "", DecodeError{Scheme: SchemeXOR, Err: err}
	}
	raw, err := FromChars(string(bs))
	if err != nil {
		return "", DecodeError{Scheme: SchemeXOR, Err: err}
	}
	return string(CyclicXOR(raw, []byte(XorKeyGJP))), nil
}

// EncodeGJP2 is the SHA-1 hex digest of the salted password.
func EncodeGJP2(password string) string {
	digest := sha1.Sum([]byte(password + SaltGJP2))
	return hex.EncodeToString(digest[:])
}

// LevelSeed samples 50 evenly spaced characters of a level string; short level
// strings are used whole. It is the single value of the upload_level checksum.
func LevelSeed(levelString string) string {
	if len(levelString) < levelSeedSampleSize {
		return levelString
	}
	space := len(levelString) / levelSeedSampleSize
	sb := strings.Builder{}
	for i := 0; i < levelSeedSampleSize; i++ {
		sb.WriteByte(levelString[space*i])
	}
	return sb.String()
}

// RandomSeed returns n random letters and digits, the "rs" request parameter.
func RandomSeed(rng *rand.Rand, n int) string {
	return string(
		lo.Times(
			n,
			func(_ int) rune {
				return seedAlphabet[rng.Intn(len(seedAlphabet))]
			},
		),
	)
}

// GenerateUDID mimics a device id: a fixed prefix followed by four random numbers.
func GenerateUDID(rng *rand.Rand) string {
	parts := lo.Times(
		4,
		func(_ int) string {
			return strconv.Itoa(100_000 + rng.Intn(100_000_000-100_000+1))
		},
	)
	return udidPrefix + strings.Join(parts, "")
}

// GenerateRewardsChk builds the chk parameter of the rewards and quests
// endpoints: five random characters followed by a XOR encoded random number.
func GenerateRewardsChk(rng *rand.Rand, key XorKey) string {
	number := strconv.Itoa(10_000 + rng.Intn(1_000_000-10_000+1))
	xored := XORChars([]byte(number), string(key))
	return RandomSeed(rng, 5) + base64.StdEncoding.EncodeToString([]byte(xored))
}

// DecodeRewardsChk recovers the number hidden in a chk built by GenerateRewardsChk.
func DecodeRewardsChk(chk string, key XorKey) (int, error) {
	if len(chk) <= 5 {
		return 0, DecodeError{Scheme: SchemeXOR, Err: ErrEmptyInput}
	}
	text, err := Decode(chk[5:], SchemeXOR, string(key))
	if err != nil {
		return 0, err
	}
	number, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Wrapf(err, `DecodeRewardsChk error: "%s" is not a number`, text)
	}
	return number, nil
}
