package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forthic-lang/forthic"
)

// captureStdout runs fn with os.Stdout replaced by a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.3rd")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunPrintsFinalStack(t *testing.T) {
	path := writeSource(t, "1 2 +")

	var runErr error
	output := captureStdout(t, func() {
		runErr = runRun(runCmd, []string{path})
	})

	if runErr != nil {
		t.Fatalf("runRun: %v\noutput: %s", runErr, output)
	}
	if !strings.Contains(output, "[3]") {
		t.Errorf("output = %q, want it to contain %q", output, "[3]")
	}
}

func TestRunUnresolvedSymbolIsNonFatal(t *testing.T) {
	path := writeSource(t, "1 2 + not-a-word")

	var runErr error
	output := captureStdout(t, func() {
		runErr = runRun(runCmd, []string{path})
	})

	if runErr != nil {
		t.Fatalf("runRun returned an error for a recoverable name error: %v", runErr)
	}
	if !strings.Contains(output, "[3]") {
		t.Errorf("output = %q, want the stack up to the failed word", output)
	}
}

func TestRunSyntaxErrorIsReturned(t *testing.T) {
	path := writeSource(t, "[ 1 2")

	var runErr error
	captureStdout(t, func() {
		runErr = runRun(runCmd, []string{path})
	})

	if runErr == nil {
		t.Fatal("expected an error for an unterminated list")
	}
}

func TestRunMissingFileIsReturned(t *testing.T) {
	if err := runRun(runCmd, []string{filepath.Join(t.TempDir(), "missing.3rd")}); err == nil {
		t.Fatal("expected an error opening a missing file")
	}
}

func TestRunMaxStackDepthIsFatal(t *testing.T) {
	path := writeSource(t, "1 1 1")

	oldDepth := maxStackDepthFlag
	maxStackDepthFlag = 2
	defer func() { maxStackDepthFlag = oldDepth }()

	var runErr error
	captureStdout(t, func() {
		runErr = runRun(runCmd, []string{path})
	})

	if runErr == nil {
		t.Fatal("expected an error when the operand stack exceeds the configured depth")
	}
	var fatal *forthic.FatalError
	if !errors.As(runErr, &fatal) {
		t.Errorf("runErr = %v, want a *forthic.FatalError", runErr)
	}
}
