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

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntree/internal/cli"
)

const testdata = "../../ast/testdata/"

// execute runs the syntree command with the given arguments.
func execute(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func golden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(testdata + name)
	require.NoError(t, err)
	return string(data)
}

func TestSubcommands(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cmd := cli.NewRootCommand()
	assert.Equal("syntree", cmd.Use)
	for _, name := range []string{"dump", "handle", "snapshot", "load"} {
		sub, _, err := cmd.Find([]string{name})
		if assert.NoError(err, name) {
			assert.Equal(name, sub.Name())
		}
	}
	for _, name := range []string{"config", "log-level", "permissive"} {
		assert.NotNil(cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	stdout, stderr, err := execute("dump", testdata+"let.yaml")
	require.NoError(t, err)
	assert.Equal(golden(t, "let.yaml.tree"), stdout)
	assert.Empty(stderr)
}

func TestDumpErrors(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	stdout, stderr, err := execute("dump", testdata+"errors.yaml")
	assert.ErrorIs(err, cli.ErrSyntax)
	assert.Equal(golden(t, "errors.yaml.tree"), stdout)
	assert.Equal(golden(t, "errors.yaml.stderr"), stderr)

	_, stderr, err = execute("dump", "--no-diagnostics", testdata+"errors.yaml")
	assert.ErrorIs(err, cli.ErrSyntax)
	assert.Empty(stderr)
}

func TestDumpMany(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	stdout, _, err := execute("dump", testdata+"let.yaml", testdata+"precedence.yaml")
	require.NoError(t, err)
	assert.Equal(
		"# "+testdata+"let.yaml (tree 0)\n"+golden(t, "let.yaml.tree")+
			"# "+testdata+"precedence.yaml (tree 1)\n"+golden(t, "precedence.yaml.tree"),
		stdout,
	)
}

func TestHandle(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	stdout, _, err := execute("handle", "18", testdata+"let.yaml")
	require.NoError(t, err)
	assert.Equal(`Ident@15..16 "a"
  in NameExpr@15..16
  in ArgList@14..20
  in CallExpr@13..20
  in VarDecl@0..21
  in Source@0..21
`, stdout)

	// Tree 1, index 0.
	stdout, _, err = execute("handle", "4294967296", testdata+"let.yaml", testdata+"errors.yaml")
	require.NoError(t, err)
	assert.True(strings.HasPrefix(stdout, `Source@0..14 "x = ;\nfoo bar\n"`), stdout)

	_, _, err = execute("handle", "4294967296", testdata+"let.yaml")
	assert.ErrorContains(err, "no element with handle 4294967296 (tree 1, index 0)")
	_, _, err = execute("handle", "x", testdata+"let.yaml")
	assert.ErrorContains(err, "invalid handle")
}

func TestSnapshot(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "let.snapshot")
	_, _, err := execute("snapshot", "-o", path, testdata+"let.yaml")
	require.NoError(t, err)

	stdout, _, err := execute("load", path, testdata+"let.yaml")
	require.NoError(t, err)
	assert.Equal(golden(t, "let.yaml.tree"), stdout)

	// A snapshot does not fit a shorter file.
	_, _, err = execute("load", path, testdata+"errors.yaml")
	assert.ErrorContains(err, "covers 21 bytes")
}

func TestConfig(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("parallelism: 1\nlog-level: error\n"), 0o600))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colour: red\n"), 0o600))

	_, _, err := execute("dump", "--config", good, testdata+"let.yaml")
	assert.NoError(err)

	_, _, err = execute("dump", "--config", bad, testdata+"let.yaml")
	assert.ErrorContains(err, "field colour not found")

	_, _, err = execute("dump", "--config", filepath.Join(dir, "missing.yaml"), testdata+"let.yaml")
	assert.ErrorIs(err, os.ErrNotExist)
}
