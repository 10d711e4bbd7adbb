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

// Package cli implements the syntree command, a developer tool for looking at
// the trees built from hand-written event logs.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bufbuild/syntree/ast"
	"github.com/bufbuild/syntree/event"
	"github.com/bufbuild/syntree/internal/logging"
)

// ErrSyntax is returned when a built tree has syntax errors. The errors
// themselves have already been printed.
var ErrSyntax = errors.New("syntax errors found")

type rootFlags struct {
	config     string
	logLevel   string
	permissive bool
}

// NewRootCommand creates the root syntree command with all subcommands.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "syntree",
		Short: "Build and inspect syntax trees from event logs",
		Long: `syntree builds syntax trees from parse event logs, and prints them.

Event logs are YAML documents holding the source text and the ordered
events a parser would produce for it:

  path: a.script
  text: "let x = 1"
  events:
    - start: Source
    - token: KwLet
    ...`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.logLevel == "" {
				return nil
			}
			if _, err := logging.ParseLevel(flags.logLevel); err != nil {
				return err
			}
			logging.SetDefault(logging.NewWriter(cmd.ErrOrStderr(), flags.logLevel))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.config, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "",
		"log level: debug, info, warn, or error (overrides the config file)")
	root.PersistentFlags().BoolVar(&flags.permissive, "permissive", false,
		"build placeholder elements for unknown node kinds instead of failing")

	root.AddCommand(newDumpCommand(flags))
	root.AddCommand(newHandleCommand(flags))
	root.AddCommand(newSnapshotCommand(flags))
	root.AddCommand(newLoadCommand(flags))

	return root
}

// loadConfig reads the config file, if any, and applies flag overrides.
func (f *rootFlags) loadConfig() (ast.Config, error) {
	var c ast.Config
	if f.config != "" {
		file, err := os.Open(f.config)
		if err != nil {
			return c, err
		}
		defer file.Close()

		c, err = ast.LoadConfig(file)
		if err != nil {
			return c, fmt.Errorf("%s: %w", f.config, err)
		}
	}

	if f.logLevel != "" {
		c.LogLevel = f.logLevel
	}
	if f.permissive {
		c.Permissive = true
	}
	return c, nil
}

// options returns the build options for a single tree.
func (f *rootFlags) options(cmd *cobra.Command) (ast.Options, error) {
	c, err := f.loadConfig()
	if err != nil {
		return ast.Options{}, err
	}
	return treeOptions(cmd, c), nil
}

// registry returns a registry configured by the flags.
func (f *rootFlags) registry(cmd *cobra.Command) (*ast.Registry, error) {
	c, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	return ast.NewRegistry(treeOptions(cmd, c), c.Parallelism), nil
}

// treeOptions is like [ast.Config.Options], but logs to the command's error
// stream.
func treeOptions(cmd *cobra.Command, c ast.Config) ast.Options {
	opts := c.Options(0)
	opts.Logger = logging.NewWriter(cmd.ErrOrStderr(), c.LogLevel)
	return opts
}

// readDocument reads an event log.
func readDocument(path string) (*event.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return event.DecodeYAML(path, data)
}

// buildAll reads the event logs at paths, and builds a tree for each.
func buildAll(cmd *cobra.Command, flags *rootFlags, paths []string) (*ast.Registry, []*ast.Tree, error) {
	reg, err := flags.registry(cmd)
	if err != nil {
		return nil, nil, err
	}

	inputs := make([]ast.Input, 0, len(paths))
	for _, path := range paths {
		doc, err := readDocument(path)
		if err != nil {
			return nil, nil, err
		}
		inputs = append(inputs, ast.Input{File: doc.File(), Log: &doc.Log})
	}

	trees, err := reg.BuildAll(cmd.Context(), inputs...)
	if err != nil {
		return nil, nil, err
	}
	return reg, trees, nil
}

func writeDump(out io.Writer, tree *ast.Tree) error {
	_, err := io.WriteString(out, ast.Dump(tree))
	return err
}
