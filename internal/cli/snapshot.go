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
	"os"

	"github.com/spf13/cobra"

	"github.com/bufbuild/syntree/ast"
)

func newSnapshotCommand(root *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "snapshot <log.yaml>",
		Short: "Write a binary snapshot of a tree",
		Long: `Build a tree from an event log and write a snapshot of its structure,
which the load command can turn back into a tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.options(cmd)
			if err != nil {
				return err
			}
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			tree, err := ast.Build(doc.File(), &doc.Log, opts)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(tree.Marshal())
				return err
			}
			return os.WriteFile(output, tree.Marshal(), 0o644) //nolint:gosec // Not a secret.
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write to (default stdout)")

	return cmd
}

func newLoadCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <snapshot> <log.yaml>",
		Short: "Print a tree loaded from a snapshot",
		Long: `Load a snapshot written by the snapshot command and print the tree.

The event log supplies the source text; its events are not replayed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.options(cmd)
			if err != nil {
				return err
			}
			snapshot, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := readDocument(args[1])
			if err != nil {
				return err
			}

			tree, err := ast.Load(doc.File(), snapshot, opts)
			if err != nil {
				return err
			}
			return writeDump(cmd.OutOrStdout(), tree)
		},
	}

	return cmd
}
