package slice

import (
	"math/rand/v2"
)

// TruncateSafe returns at most n first elements of s, a non-positive n keeps everything
func TruncateSafe[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}

func RandomChoice[T any](s []T) T {
	return s[rand.IntN(len(s))] // nolint: gosec // no need for crypto/rand here
}
