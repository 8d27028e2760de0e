package logutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/enigma/pkg/logutils"
)

func TestShortCallerFormatter(t *testing.T) {
	tests := []struct {
		file string
		line int
		want string
	}{
		{"/home/user/enigma/pkg/enigma/machine.go", 42, "machine.go:42"},
		{"machine.go", 7, "machine.go:7"},
		{"/main.go", 1, "main.go:1"},
		{"", 0, ":0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, logutils.ShortCallerFormatter(0, tt.file, tt.line))
		})
	}
}
