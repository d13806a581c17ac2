// Copyright 2025 Buf Technologies, Inc.
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

// Package hyperstr is a Unicode string library that keeps text in whatever
// compact encoding it arrived in, and provides several simultaneous views of
// it.
//
// A [String] is stored either as one byte per code unit (when it is all ASCII)
// or as UTF-16 code units, in a buffer owned by hyperstr or in a [Foreign]
// string object owned by someone else. Nothing is ever normalized to a single
// universal encoding: a String can be read as UTF-8 bytes ([UTF8View]),
// UTF-16 code units ([UTF16View]), Unicode scalars ([ScalarView]) or extended
// grapheme clusters ([GraphemeView]), and transcoding happens lazily, one
// element at a time.
//
// Each view has its own index type. An index computed in one view can be
// translated into the equivalent index of another, using the From* methods
// on the target view. Translation fails, returning false, when the position
// has no equivalent, such as a UTF-8 continuation byte or the second half of
// a UTF-16 surrogate pair.
//
// Slicing a String, or bridging it to or from a [Foreign] string object,
// never copies code units.
//
// # Support Status
//
// The following are not supported and not planned:
//
//   - Normalization, collation, or case folding.
//   - Streaming decoding.
//   - Mutation of any kind. Strings are immutable once constructed, and are
//     safe to share between goroutines.
package hyperstr
