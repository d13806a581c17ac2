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

// UTF16View is a view of a [String]'s UTF-16 encoding.
type UTF16View struct {
	core core.Core
}

// UTF16Index is an index into a [UTF16View].
type UTF16Index struct {
	offset int
}

// StartIndex returns the index of the first code unit.
func (v UTF16View) StartIndex() UTF16Index {
	return UTF16Index{}
}

// EndIndex returns the past-the-end index.
func (v UTF16View) EndIndex() UTF16Index {
	return UTF16Index{v.core.Count()}
}

// Index returns the index of the n-th code unit. n may be equal to [UTF16View.Len], in
// which case this returns the end index.
func (v UTF16View) Index(n int) UTF16Index {
	if n != v.core.Count() {
		checkIndex(n, v.core.Count(), n)
	}
	return UTF16Index{n}
}

// Next returns the index of the code unit after i.
func (v UTF16View) Next(i UTF16Index) UTF16Index {
	checkIndex(i.offset, v.core.Count(), i)
	return UTF16Index{i.offset + 1}
}

// At returns the code unit at i.
func (v UTF16View) At(i UTF16Index) uint16 {
	checkIndex(i.offset, v.core.Count(), i)
	return v.core.At(i.offset)
}

// Len returns the number of code units.
func (v UTF16View) Len() int {
	return v.core.Count()
}

// All returns an iterator over the code units of this view.
func (v UTF16View) All() iter.Seq2[UTF16Index, uint16] {
	return func(yield func(UTF16Index, uint16) bool) {
		for i := range v.core.Count() {
			if !yield(UTF16Index{i}, v.core.At(i)) {
				return
			}
		}
	}
}

// Offset returns the number of code units before i.
func (i UTF16Index) Offset() int {
	return i.offset
}

// Compare returns -1, 0 or 1 depending on whether i is before, equal to, or
// after j.
func (i UTF16Index) Compare(j UTF16Index) int {
	return cmp.Compare(i.offset, j.offset)
}

// Less returns whether i is before j.
func (i UTF16Index) Less(j UTF16Index) bool {
	return i.offset < j.offset
}

// Format implements [fmt.Formatter].
func (i UTF16Index) Format(s fmt.State, verb rune) {
	debug.Fprintf("[%d]", i.offset).Format(s, verb)
}
