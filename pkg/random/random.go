package random

import (
	crand "crypto/rand"
	mrand "math/rand/v2"
)

// RandInt returns a number in [min, max)
func RandInt(min, max int) int {
	return mrand.IntN(max-min) + min // nolint: gosec
}

func RandBytes(sz int) []byte {
	data := make([]byte, sz)
	if _, err := crand.Read(data); err != nil {
		panic(err)
	}
	return data
}

// RandLetters returns n random lower case latin letters
func RandLetters(n int) string {
	letters := make([]byte, n)
	for i := range letters {
		letters[i] = byte('a' + RandInt(0, 26))
	}
	return string(letters)
}
