package config

import (
	"fmt"
	"io"
	"os"
)

// exit and stderr are swapped in tests.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(1)
}
