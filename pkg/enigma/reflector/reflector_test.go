package reflector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/reflector"
	"github.com/sergeii/enigma/pkg/enigma/wiring"
)

func TestReflector_Reflect(t *testing.T) {
	r := reflector.New()
	assert.Equal(t, wiring.ReflectorA, r.Model())
	assert.Equal(t, alphabet.Letter('e'), r.Reflect('a'))
	assert.Equal(t, alphabet.Letter('a'), r.Reflect('e'))
	assert.Equal(t, alphabet.Letter('d'), r.Reflect('z'))

	require.NoError(t, r.SetModel(wiring.ReflectorB))
	assert.Equal(t, alphabet.Letter('y'), r.Reflect('a'))
	assert.Equal(t, alphabet.Letter('t'), r.Reflect('z'))

	require.NoError(t, r.SetModel(wiring.ReflectorC))
	assert.Equal(t, alphabet.Letter('f'), r.Reflect('a'))
}

func TestReflector_EveryModelReflectsNoLetterOntoItself(t *testing.T) {
	r := reflector.New()
	for _, model := range wiring.ReflectorModels {
		require.NoError(t, r.SetModel(model))
		for i := range alphabet.Size {
			l := alphabet.FromIndex(i)
			reflected := r.Reflect(l)
			assert.NotEqual(t, l, reflected)
			assert.Equal(t, l, r.Reflect(reflected))
		}
	}
}

func TestReflector_Cycle(t *testing.T) {
	r := reflector.New()
	r.Next()
	assert.Equal(t, wiring.ReflectorB, r.Model())
	r.Next()
	r.Next()
	assert.Equal(t, wiring.ReflectorA, r.Model())
	r.Prev()
	assert.Equal(t, wiring.ReflectorC, r.Model())
}

func TestReflector_SetUnknownModel(t *testing.T) {
	r := reflector.New()
	err := r.SetModel(wiring.ReflectorModel(3))
	assert.ErrorIs(t, err, wiring.ErrUnknownReflector)
	assert.Equal(t, wiring.ReflectorA, r.Model())
}
