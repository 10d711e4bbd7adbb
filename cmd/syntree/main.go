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

// Command syntree builds and inspects syntax trees from event logs.
package main

import (
	"errors"
	"os"

	"github.com/bufbuild/syntree/internal/cli"
	"github.com/bufbuild/syntree/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if !errors.Is(err, cli.ErrSyntax) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return 1
	}
	return 0
}
