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

// Package source provides source file abstractions: the text a syntax tree
// was built from, a lazily computed line table over it, and spans of bytes
// within it.
//
// The tree builder itself works only with lengths and byte offsets. A [File]
// is consulted only to render diagnostics and to anchor them when there is no
// token to point at (see [File.EOF]).
package source
