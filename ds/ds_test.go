package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeChunks(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, MakeChunks([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]string{{"1", "25"}, {"2", "65"}}, MakeChunks([]string{"1", "25", "2", "65"}, 2))
	assert.Empty(t, MakeChunks([]int{}, 2))
}

func TestNearestDivisibleByM(t *testing.T) {
	assert.Equal(t, 0, NearestDivisibleByM(0, 4))
	assert.Equal(t, 4, NearestDivisibleByM(1, 4))
	assert.Equal(t, 4, NearestDivisibleByM(4, 4))
	assert.Equal(t, 8, NearestDivisibleByM(7, 4))
}

func TestMakeRange(t *testing.T) {
	assert.Equal(t, []int{-1, 0, 1, 2}, MakeRange(-1, 3, 1))
}

func TestShallowCopy(t *testing.T) {
	original := []any{"abc", 5}
	copied := ShallowCopy(original)
	copied[0] = "def"
	assert.Equal(t, "abc", original[0])
}

func TestErrUnreachableCode(t *testing.T) {
	err := ErrUnreachableCode{Caller: "TestErrUnreachableCode"}
	assert.Equal(t, "TestErrUnreachableCode: unreachable code", err.Error())
}
