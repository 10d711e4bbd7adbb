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

// Package event defines the event log: the flat, ordered record of
// tree-building decisions a parser makes, which is later replayed to build a
// syntax tree.
//
// A parser never builds tree nodes directly. Instead, it appends events to a
// [Log]: "start a node", "finish the current node", "consume a token",
// "reclassify the token just consumed", and "report an error". This decouples
// grammar decisions from tree materialization, and makes it cheap for the
// parser to change its mind about the shape of the tree.
//
// # Deferred parents
//
// A parser using precedence climbing only learns that `a` is the left operand
// of `a + b` after it has already completed a node for `a`. The [Completed.Precede]
// operation handles this: it opens a new start event after the fact, and
// records, on the already-completed child's start event, a back-reference to
// it. When the log is replayed, the child's ancestors are opened before the
// child itself, following these back-references.
//
// # Contract
//
// The log is a contract between a parser and the tree builder. Unbalanced
// start and finish events are a bug in the parser; they are not diagnosed, and
// replaying such a log panics.
package event
