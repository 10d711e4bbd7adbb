// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpora runs golden-file tests: each file with a given extension
// under a directory is one test case, and its expected outputs live next to
// it in files with extra extensions.
package corpora

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus is a table-driven test whose table is a directory tree.
type Corpus struct {
	// The directory containing the test cases, relative to the file that
	// calls [Corpus.Run].
	Root string

	// An environment variable holding a glob. Test cases whose names match it
	// have their outputs rewritten instead of checked.
	Refresh string

	// The file extension, without a dot, of test case files.
	Extension string

	// The outputs each test case produces. An output file that does not exist
	// is expected to be empty.
	Outputs []Output

	// Test runs one test case and returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one output of a test case.
type Output struct {
	// Appended to the test case's file name to find the expected output:
	// for Extension "tree", case "a.yaml" is checked against "a.yaml.tree".
	Extension string

	// Compares outputs. If nil, outputs must match byte-for-byte.
	Compare Compare
}

// Compare compares an output against its expected value, returning a
// description of the mismatch, or "" if they match.
type Compare func(got, want string) string

// Run runs every test case in the corpus as a subtest of t.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	dir := callerDir(0)
	root := filepath.Join(dir, c.Root)

	cases, err := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension)
	if err != nil {
		t.Fatalf("corpora: listing %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no *.%s files in %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing outputs matching %s=%s", c.Refresh, refresh)
		// Refreshing is never a passing run.
		t.Fail()
	}

	for _, name := range cases {
		path := filepath.Join(root, filepath.FromSlash(name))
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: %v", err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: got %d outputs, want %d", len(results), len(c.Outputs))
			}

			update := refresh != "" && doublestar.MatchUnvalidated(refresh, name)
			for i, out := range c.Outputs {
				golden := path + "." + out.Extension
				if update {
					if err := write(golden, results[i]); err != nil {
						t.Errorf("corpora: %v", err)
					}
					continue
				}

				want, err := os.ReadFile(golden)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: %v", err)
					continue
				}

				compare := out.Compare
				if compare == nil {
					compare = Diff
				}
				if msg := compare(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %s:\n%s", golden, msg)
				}
			}
		})
	}
}

// write writes an output file; empty outputs are deleted instead.
func write(path, text string) error {
	if text == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// Diff is the default [Compare]: it requires an exact match, and describes
// mismatches as a unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return strings.TrimSuffix(diff, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("syntree/corpora: could not determine the test's directory")
	}
	return filepath.Dir(file)
}
