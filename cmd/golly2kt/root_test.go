// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golly2kt/internal/issue"

	"github.com/charmbracelet/fang"
)

// runCLI executes the command tree with args and returns captured output.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := NewApp(Dependencies{Stdout: &out, Stderr: &errOut})
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)

	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// inTempDir makes a fresh temp dir the working directory and writes files
// into it. Keys are slash-separated relative paths.
func inTempDir(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
	t.Chdir(root)
	return root
}

func TestRoot_NoArgsPrintsUsage(t *testing.T) {
	inTempDir(t, nil)

	stdout, _, err := runCLI(t)
	if want := "Usage: golly2kt <file1> <file2> ...\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if strings.Contains(stdout, "enum class") {
		t.Error("usage run must not print a listing")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
	if exitCode(err) != 1 {
		t.Errorf("exitCode() = %d, want 1", exitCode(err))
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "exit error", err: &ExitError{Code: 3}, want: 3},
		{name: "zero code exit error", err: &ExitError{Err: errors.New("x")}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	t.Run("reported usage is silent", func(t *testing.T) {
		t.Parallel()

		var w bytes.Buffer
		NewApp(Dependencies{}).handleError(&w, fang.Styles{}, &ExitError{Code: 1})
		if w.Len() != 0 {
			t.Errorf("handleError() wrote %q for a reported exit", w.String())
		}
	})

	t.Run("actionable error shows suggestions", func(t *testing.T) {
		t.Parallel()

		err := issue.NewErrorContext().
			WithOperation("encode pattern").
			WithResource("patterns/gun.rle").
			WithSuggestion("Check that the file exists and is readable").
			Wrap(errors.New("no such file or directory")).
			BuildError()

		var w bytes.Buffer
		NewApp(Dependencies{}).handleError(&w, fang.Styles{}, err)
		out := w.String()
		if !strings.Contains(out, "failed to encode pattern: patterns/gun.rle: no such file or directory") {
			t.Errorf("handleError() output missing message: %q", out)
		}
		if !strings.Contains(out, "Check that the file exists and is readable") {
			t.Errorf("handleError() output missing suggestion: %q", out)
		}
	})

	t.Run("verbose shows chain", func(t *testing.T) {
		t.Parallel()

		app := NewApp(Dependencies{})
		app.verbose = true

		var w bytes.Buffer
		app.handleError(&w, fang.Styles{}, issue.WrapWithContext(errors.New("root cause"), "encode pattern", "a/b.rle"))
		if !strings.Contains(w.String(), "Error chain:") {
			t.Errorf("handleError() verbose output missing chain: %q", w.String())
		}
	})
}

func TestGetVersionString(t *testing.T) {
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}
}
