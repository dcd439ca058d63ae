package ds

import (
	"fmt"
)

// NearestDivisibleByM returns the smallest number that is not less than n and
// is divisible by m. It is how base64 text gets its padding length and how
// fixed width blocks get aligned.
func NearestDivisibleByM(n int, m int) int {
	if m <= 0 {
		err := fmt.Errorf(`NearestDivisibleByM got non-positive divisor m = %d`, m)
		panic(err)
	}
	remainder := n % m
	if remainder == 0 {
		return n
	}
	if remainder < 0 {
		return n - remainder
	}
	return n + m - remainder
}
