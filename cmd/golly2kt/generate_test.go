// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"golly2kt/internal/naming"
	"golly2kt/internal/rle"
)

func TestRoot_GeneratesListing(t *testing.T) {
	inTempDir(t, map[string]string{
		"patterns/glider-gun.rle": "#N Gosper glider gun\nx = 36, y = 9, rule = B3/S23\n24bo$22bobo$\n12b2o!\n",
		"dir/still-life.rl":       "#N Still Life\nx = 3, y = 3\nb2o$o b$\n",
	})

	stdout, stderr, err := runCLI(t, "patterns/glider-gun.rle", "dir/still-life.rl")
	if err != nil {
		t.Fatalf("Execute() error = %v (stderr: %s)", err, stderr)
	}

	want := "enum class Patterns(val value: String) {\n" +
		"    GliderGun(\"24bo\\$22bobo\\$12b2o!\"),\n" +
		"    StillLife(\"b2o\\$o b\\$\"),\n" +
		"}\n"
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant:\n%s", stdout, want)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty without --verbose", stderr)
	}
}

func TestRoot_DuplicateNames(t *testing.T) {
	inTempDir(t, map[string]string{
		"a/foo-bar.txt": "o!\n",
		"b/foo-bar.rle": "2o!\n",
	})

	stdout, _, err := runCLI(t, "a/foo-bar.txt", "b/foo-bar.rle")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Count(stdout, "FooBar(") != 1 {
		t.Errorf("expected exactly one FooBar entry:\n%s", stdout)
	}
	if !strings.Contains(stdout, `    FooBar("2o!"),`) {
		t.Errorf("expected later content to win:\n%s", stdout)
	}
}

func TestRoot_MissingFile(t *testing.T) {
	inTempDir(t, map[string]string{
		"patterns/block.rle": "2o$2o!\n",
	})

	stdout, _, err := runCLI(t, "patterns/block.rle", "patterns/missing.rle")
	if !errors.Is(err, rle.ErrFileAccess) {
		t.Fatalf("error = %v, want ErrFileAccess", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want no partial listing", stdout)
	}
	if exitCode(err) != 1 {
		t.Errorf("exitCode() = %d, want 1", exitCode(err))
	}
}

func TestRoot_PathShape(t *testing.T) {
	inTempDir(t, map[string]string{
		"glider.rle": "bob$2bo$3o!\n",
	})

	stdout, _, err := runCLI(t, "glider.rle")
	if !errors.Is(err, naming.ErrPathShape) {
		t.Fatalf("error = %v, want ErrPathShape", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	inTempDir(t, map[string]string{
		"patterns/block.rle": "2o$2o!\n",
	})

	stdout, stderr, err := runCLI(t, "--verbose", "patterns/block.rle")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, "encoded pattern") {
		t.Errorf("stderr = %q, want debug log", stderr)
	}
	if strings.Contains(stdout, "encoded pattern") {
		t.Error("logs leaked into stdout")
	}
}

func TestRoot_ConfigEnumName(t *testing.T) {
	inTempDir(t, map[string]string{
		"golly2kt.cue":       `listing: enum_name: "Still"`,
		"patterns/block.rle": "2o$2o!\n",
	})

	stdout, _, err := runCLI(t, "patterns/block.rle")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout, "enum class Still(val value: String) {\n") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRoot_GlobExpansion(t *testing.T) {
	inTempDir(t, map[string]string{
		"patterns/c-gun.rle": "3o!\n",
		"patterns/a-gun.rle": "o!\n",
		"patterns/b-gun.rle": "2o!\n",
		"patterns/notes.txt": "not a pattern\n",
	})

	stdout, _, err := runCLI(t, "patterns/*.rle")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "enum class Patterns(val value: String) {\n" +
		"    AGun(\"o!\"),\n" +
		"    BGun(\"2o!\"),\n" +
		"    CGun(\"3o!\"),\n" +
		"}\n"
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant:\n%s", stdout, want)
	}
}

func TestRoot_NoGlob(t *testing.T) {
	inTempDir(t, map[string]string{
		"patterns/a-gun.rle": "o!\n",
	})

	_, _, err := runCLI(t, "--no-glob", "patterns/*.rle")
	if !errors.Is(err, rle.ErrFileAccess) {
		t.Errorf("error = %v, want literal path to fail as ErrFileAccess", err)
	}
}

func TestExpandGlobs(t *testing.T) {
	inTempDir(t, map[string]string{
		"patterns/b.rle":      "",
		"patterns/a.rle":      "",
		"patterns/deep/c.rle": "",
	})

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "literal args untouched",
			args: []string{"patterns/b.rle", "patterns/a.rle"},
			want: []string{"patterns/b.rle", "patterns/a.rle"},
		},
		{
			name: "star sorted",
			args: []string{"patterns/*.rle"},
			want: []string{"patterns/a.rle", "patterns/b.rle"},
		},
		{
			name: "double star",
			args: []string{"patterns/**/c.rle"},
			want: []string{"patterns/deep/c.rle"},
		},
		{
			name: "no match kept literally",
			args: []string{"patterns/*.lif"},
			want: []string{"patterns/*.lif"},
		},
		{
			name: "mixed preserves argument order",
			args: []string{"patterns/b.rle", "patterns/[a].rle"},
			want: []string{"patterns/b.rle", "patterns/a.rle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandGlobs(tt.args)
			if err != nil {
				t.Fatalf("expandGlobs() error = %v", err)
			}
			for i := range got {
				got[i] = strings.ReplaceAll(got[i], string(os.PathSeparator), "/")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expandGlobs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestExpandGlobs_BadPattern(t *testing.T) {
	t.Parallel()

	if _, err := expandGlobs([]string{"patterns/[.rle"}); err == nil {
		t.Error("expandGlobs() expected error for malformed pattern")
	}
}

func TestExpandGlobs_LiteralFileWins(t *testing.T) {
	inTempDir(t, map[string]string{
		"p/a[1].rle": "o!\n",
		"p/a1.rle":   "2o!\n",
	})

	got, err := expandGlobs([]string{"p/a[1].rle"})
	if err != nil {
		t.Fatalf("expandGlobs() error = %v", err)
	}
	if want := []string{"p/a[1].rle"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expandGlobs() = %v, want %v", got, want)
	}
}
