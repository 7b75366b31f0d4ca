package config

import (
	"fmt"
	"os"
)

// Exit codes used by the lottery binaries.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// Exit writes a formatted message to stderr and exits with code.
func Exit(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

// Exitf exits with ExitFailure.
func Exitf(format string, args ...any) {
	Exit(ExitFailure, format, args...)
}
