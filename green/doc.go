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

// Package green implements the structural syntax tree: an immutable tree of
// kinds and lengths, with no absolute positions, built by replaying an
// [event.Log].
//
// Structural elements know only their own length; the absolute offset of an
// element is the sum of the lengths of everything before it. This makes the
// structural tree cheap to build bottom-up, and it is discarded as soon as
// package flat has computed positions for it.
package green
