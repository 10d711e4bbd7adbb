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

/*
Package report provides the diagnostics framework for syntax trees: diagnostic
construction, storage, and plain-text rendering.

Diagnostics are collected into a [Report], which is a helpful builder over a
slice of [Diagnostic]s. Each [Diagnostic] consists of a message plus metadata
for rendering and for tooling, such as source code spans, the handle of the
tree element a diagnostic is anchored to, notes, and the [Provenance] of the
code that reported it.

Reports can be rendered using a [Renderer].

# Anchors

A diagnostic's primary span is either anchored to a tree element (in which
case [Diagnostic.Anchor] returns that element's handle, which can be sent to
an editor in place of a live reference), or it is an explicit fallback span,
such as the end of the file, with an empty anchor.

# Debugging

When the environment variable SYNTREE_DEBUG is set to any non-empty value,
every diagnostic records a stack trace of the code that created it.

# Style

Diagnostic messages do not begin with a capital letter and do not end in
punctuation. The words "error", "warning", "remark", "help", and "note" are
never capitalized. The primary span should be precisely the code that
resulted in the diagnostic.
*/
package report
