package config

import (
	"fmt"
	"io"
	"os"
)

var exitFunc = os.Exit

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	exitWith(os.Stderr, 1, format, args...)
}

func exitWith(w io.Writer, code int, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
	exitFunc(code)
}
