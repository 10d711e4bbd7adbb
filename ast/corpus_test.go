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

package ast_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntree/ast"
	"github.com/bufbuild/syntree/event"
	"github.com/bufbuild/syntree/internal/corpora"
	"github.com/bufbuild/syntree/internal/logging"
	"github.com/bufbuild/syntree/report"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "SYNTREE_REFRESH",
		Extension: "yaml",
		Outputs: []corpora.Output{
			{Extension: "tree"},
			{Extension: "stderr"},
		},
		Test: func(t *testing.T, path, text string) []string {
			doc, err := event.DecodeYAML(path, []byte(text))
			require.NoError(t, err)

			tree, err := ast.Build(doc.File(), &doc.Log, ast.Options{
				Logger: logging.NewWriter(io.Discard, "error"),
			})
			require.NoError(t, err)

			r := tree.Report()
			stderr, _, _ := report.Renderer{}.RenderString(&r)
			return []string{ast.Dump(tree), stderr}
		},
	}
	corpus.Run(t)
}
