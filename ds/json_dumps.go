package ds

import (
	"encoding/json"
	"fmt"
)

// DumpJSON is meant for error messages; it never fails.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}
