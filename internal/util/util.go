// Package util provides common utility functions.
package util

// CloneBytes returns an independent copy of b.
// A nil or empty input returns nil.
func CloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	b2 := make([]byte, len(b))
	copy(b2, b)
	return b2
}
