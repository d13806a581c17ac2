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

package hyperstr

import (
	"cmp"
	"fmt"
	"iter"

	"buf.build/go/hyperstr/internal/core"
	"buf.build/go/hyperstr/internal/debug"
)

// ScalarView is a view of a [String]'s Unicode scalars.
//
// Unpaired surrogates, which can occur in foreign strings, are read as
// U+FFFD.
type ScalarView struct {
	core core.Core
}

// ScalarIndex is an index into a [ScalarView].
type ScalarIndex struct {
	offset int // In code units.
}

// StartIndex returns the index of the first scalar.
func (v ScalarView) StartIndex() ScalarIndex {
	return ScalarIndex{}
}

// EndIndex returns the past-the-end index.
func (v ScalarView) EndIndex() ScalarIndex {
	return ScalarIndex{v.core.Count()}
}

// Next returns the index of the scalar after i.
func (v ScalarView) Next(i ScalarIndex) ScalarIndex {
	checkIndex(i.offset, v.core.Count(), i)
	_, n := v.core.Decode(i.offset)
	return ScalarIndex{i.offset + n}
}

// At returns the scalar at i.
func (v ScalarView) At(i ScalarIndex) rune {
	checkIndex(i.offset, v.core.Count(), i)
	r, _ := v.core.Decode(i.offset)
	return r
}

// Len returns the number of scalars.
//
// This is linear in the length of the string, unless it is stored one byte
// per character.
func (v ScalarView) Len() int {
	if v.core.IsASCII() {
		return v.core.Count()
	}

	n := 0
	for range v.core.Scalars(0) {
		n++
	}
	return n
}

// All returns an iterator over the scalars of this view.
func (v ScalarView) All() iter.Seq2[ScalarIndex, rune] {
	return func(yield func(ScalarIndex, rune) bool) {
		for i, r := range v.core.Scalars(0) {
			if !yield(ScalarIndex{i}, r) {
				return
			}
		}
	}
}

// Offset returns the number of UTF-16 code units before i.
func (i ScalarIndex) Offset() int {
	return i.offset
}

// Compare returns -1, 0 or 1 depending on whether i is before, equal to, or
// after j.
func (i ScalarIndex) Compare(j ScalarIndex) int {
	return cmp.Compare(i.offset, j.offset)
}

// Less returns whether i is before j.
func (i ScalarIndex) Less(j ScalarIndex) bool {
	return i.offset < j.offset
}

// Format implements [fmt.Formatter].
func (i ScalarIndex) Format(s fmt.State, verb rune) {
	debug.Fprintf("[%d]", i.offset).Format(s, verb)
}
