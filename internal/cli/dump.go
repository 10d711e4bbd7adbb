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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bufbuild/syntree/report"
)

type dumpFlags struct {
	noDiagnostics bool
	debug         bool
}

func newDumpCommand(root *rootFlags) *cobra.Command {
	flags := &dumpFlags{}

	cmd := &cobra.Command{
		Use:   "dump <log.yaml>...",
		Short: "Print the trees built from event logs",
		Long: `Build a tree from each event log and print it, one element per line.

Syntax errors recorded in the logs are printed to stderr after each tree,
and make the command fail.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, root, flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.noDiagnostics, "no-diagnostics", false, "do not print syntax errors")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "print where each syntax error was reported")

	return cmd
}

func runDump(cmd *cobra.Command, root *rootFlags, flags *dumpFlags, args []string) error {
	_, trees, err := buildAll(cmd, root, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := report.Renderer{ShowDebug: flags.debug}
	var failed bool
	for i, tree := range trees {
		if len(trees) > 1 {
			fmt.Fprintf(out, "# %s (tree %d)\n", args[i], tree.ID())
		}
		if err := writeDump(out, tree); err != nil {
			return err
		}

		failed = failed || tree.HasErrors()
		if flags.noDiagnostics {
			continue
		}
		r := tree.Report()
		if _, _, err := renderer.Render(&r, cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	if failed {
		return ErrSyntax
	}
	return nil
}
