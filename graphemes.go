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
	"buf.build/go/hyperstr/internal/segment"
)

// Segmenter detects extended grapheme cluster boundaries.
//
// [GraphemeView] never looks at the text itself; it only walks scalars and
// asks a Segmenter where clusters end.
type Segmenter interface {
	// IsBoundary reports whether the cluster that begins at start ends
	// immediately before the scalar at i.
	//
	// start < i always holds, and there is no boundary between start and the
	// scalar before i.
	IsBoundary(v ScalarView, start, i ScalarIndex) bool
}

// UnicodeSegmenter is a [Segmenter] that implements the extended grapheme
// cluster rules of Unicode Standard Annex #29.
//
// This is the default segmenter.
type UnicodeSegmenter struct{}

// IsBoundary implements [Segmenter].
func (UnicodeSegmenter) IsBoundary(v ScalarView, start, i ScalarIndex) bool {
	return segment.IsBoundary(v.core.Scalars(start.offset), i.offset)
}

// GraphemeView is a view of a [String]'s extended grapheme clusters.
type GraphemeView struct {
	core core.Core
	seg  Segmenter
}

// Index is an index into a [GraphemeView], which is also the index type of
// [String] itself.
type Index struct {
	offset int // In code units.
}

// StartIndex returns the index of the first cluster.
func (v GraphemeView) StartIndex() Index {
	return Index{}
}

// EndIndex returns the past-the-end index.
func (v GraphemeView) EndIndex() Index {
	return Index{v.core.Count()}
}

// Next returns the index of the cluster after the one at i.
func (v GraphemeView) Next(i Index) Index {
	checkIndex(i.offset, v.core.Count(), i)

	if _, ok := v.seg.(UnicodeSegmenter); ok {
		return Index{segment.Next(v.core.Scalars(i.offset), v.core.Count())}
	}

	scalars := ScalarView{v.core}
	start := ScalarIndex{i.offset}
	j := scalars.Next(start)
	for j.offset < v.core.Count() && !v.seg.IsBoundary(scalars, start, j) {
		j = scalars.Next(j)
	}
	return Index{j.offset}
}

// At returns the cluster at i, as a slice of the string being viewed.
func (v GraphemeView) At(i Index) String {
	return String{v.core.Slice(i.offset, v.Next(i).offset), v.seg}
}

// Len returns the number of clusters.
//
// This is linear in the length of the string.
func (v GraphemeView) Len() int {
	n := 0
	for i := v.StartIndex(); i.offset < v.core.Count(); i = v.Next(i) {
		n++
	}
	return n
}

// All returns an iterator over the clusters of this view.
func (v GraphemeView) All() iter.Seq2[Index, String] {
	return func(yield func(Index, String) bool) {
		for i := v.StartIndex(); i.offset < v.core.Count(); {
			next := v.Next(i)
			if !yield(i, String{v.core.Slice(i.offset, next.offset), v.seg}) {
				return
			}
			i = next
		}
	}
}

// Compare returns -1, 0 or 1 depending on whether i is before, equal to, or
// after j.
func (i Index) Compare(j Index) int {
	return cmp.Compare(i.offset, j.offset)
}

// Less returns whether i is before j.
func (i Index) Less(j Index) bool {
	return i.offset < j.offset
}

// Format implements [fmt.Formatter].
func (i Index) Format(s fmt.State, verb rune) {
	debug.Fprintf("[%d]", i.offset).Format(s, verb)
}
