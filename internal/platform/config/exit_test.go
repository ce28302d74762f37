package config

import (
	"bytes"
	"testing"
)

func TestExitWithWritesMessageAndCode(t *testing.T) {
	var gotCode int
	previous := exitFunc
	exitFunc = func(code int) { gotCode = code }
	t.Cleanup(func() { exitFunc = previous })

	var out bytes.Buffer
	exitWith(&out, 1, "fatal: %s", "registry invalid")

	if gotCode != 1 {
		t.Fatalf("exit code = %d, want 1", gotCode)
	}
	if out.String() != "fatal: registry invalid\n" {
		t.Fatalf("output = %q", out.String())
	}
}
