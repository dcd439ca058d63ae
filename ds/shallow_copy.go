package ds

// ShallowCopy is needed wherever a caller's slice must not be appended to in
// place, since append may write into the caller's backing array.
func ShallowCopy[T any](ts []T) []T {
	tsCopy := make([]T, len(ts), len(ts)+1)
	copy(tsCopy, ts)
	return tsCopy
}
