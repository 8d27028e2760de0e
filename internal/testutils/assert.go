package testutils

import (
	"fmt"
	"os"
)

// Must unwraps a value in test setup code where an error means a broken fixture
func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("test setup failed: %v", err))
	}
	return v
}

// Ignore is for closers in deferred cleanup
func Ignore(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignored error: %v\n", err)
	}
}
