package logutils

import (
	"strconv"
	"strings"
)

// ShortCallerFormatter trims the caller down to the file name and the line, e.g. machine.go:42
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		file = file[idx+1:]
	}
	return file + ":" + strconv.Itoa(line)
}
