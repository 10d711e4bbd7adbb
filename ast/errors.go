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

package ast

import (
	"fmt"

	"github.com/bufbuild/syntree/id"
	"github.com/bufbuild/syntree/syntax"
)

// UnhandledKindError is returned when a tree contains a node kind that has
// no [Variant], and the tree is not permissive.
//
// This indicates a grammar production that has been added to a parser
// without a corresponding element shape.
type UnhandledKindError struct {
	Kind   syntax.Kind
	Handle id.Handle
}

// Error implements [error].
func (e *UnhandledKindError) Error() string {
	return fmt.Sprintf("unhandled node kind %v at %v", e.Kind, e.Handle)
}
