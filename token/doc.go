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

// Package token defines the kinds of leaf tokens that appear in a syntax
// tree, along with the classification flags attached to each kind.
//
// Token kinds are produced by an external lexer and forwarded to the tree
// builder through consume-token events. This package never looks at token
// text: everything it knows about a token is determined by its [Kind].
//
// # Flags
//
// Every [Kind] carries a fixed set of [Flags], which higher layers use to
// sort tokens into categories (literals, identifiers, trivia) without
// switching on every kind. A kind may carry several flags; for example, the
// contextual keyword async is both [FlagIdent] and [FlagKeyword], because
// it is lexed as a plain identifier and only reclassified after the fact.
package token
