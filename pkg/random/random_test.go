package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/enigma/pkg/random"
)

func TestRandInt(t *testing.T) {
	for range 100 {
		n := random.RandInt(1, 27)
		assert.GreaterOrEqual(t, n, 1)
		assert.Less(t, n, 27)
	}
}

func TestRandLetters(t *testing.T) {
	s := random.RandLetters(50)
	assert.Len(t, s, 50)
	assert.Regexp(t, "^[a-z]+$", s)
	assert.Len(t, random.RandBytes(8), 8)
}
