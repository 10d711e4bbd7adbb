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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bufbuild/syntree/id"
)

func newHandleCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handle <handle> <log.yaml>...",
		Short: "Resolve an element handle",
		Long: `Build a tree from each event log, in order, and print the element the
given handle refers to, along with its ancestors.

Trees are numbered from zero in the order their logs are given.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := id.Parse(args[0])
			if err != nil {
				return err
			}

			reg, _, err := buildAll(cmd, root, args[1:])
			if err != nil {
				return err
			}

			elem := reg.Resolve(h)
			if elem == nil {
				return fmt.Errorf("no element with handle %v (tree %d, index %d)", h, h.Tree, h.Index)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%v %s\n", elem, strconv.Quote(elem.Text()))
			for a := range elem.Ancestors() {
				fmt.Fprintf(out, "  in %v\n", a)
			}
			return nil
		},
	}

	return cmd
}
