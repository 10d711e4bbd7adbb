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

// Package ast provides the queryable form of a syntax tree.
//
// A [Tree] is built from an [event.Log] by replaying it into a structural
// tree (package green) and flattening that into a positioned array (package
// flat). The structural tree is discarded; the Tree keeps only the array,
// and answers queries about any element by its index in it.
//
// Elements are materialized lazily. [Tree.Element] returns the same
// *[Element] for an index every time it is called, and each Element knows its
// [Variant]: which concrete node or token shape it is. Typed views, such as
// [VarDecl] or [BinaryExpr], are obtained from an Element with its As*
// methods, which return a zero view when the element has some other shape.
//
// # Handles
//
// Anything that outlives a Tree (an editor, a diagnostic, another process)
// refers to an element by its [id.Handle]: the pair of a tree ID and an
// index. A [Registry] resolves handles across many trees.
//
// # Concurrency
//
// A built Tree may be used from many goroutines. Its entries never change;
// its element cache and diagnostics are synchronized internally.
package ast
