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

package core

import (
	"iter"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	surrLead  = 0xd800
	surrTrail = 0xdc00
	surrEnd   = 0xe000
)

// Decode decodes the scalar whose encoding starts at code unit i, returning
// it and the number of code units it occupies.
//
// Unpaired surrogates decode as U+FFFD, one code unit each.
func (c Core) Decode(i int) (rune, int) {
	u := c.At(i)
	if u < surrLead || u >= surrEnd {
		return rune(u), 1
	}

	if u < surrTrail && i+1 < c.Count() {
		if v := c.At(i + 1); v >= surrTrail && v < surrEnd {
			return utf16.DecodeRune(rune(u), rune(v)), 2
		}
	}
	return utf8.RuneError, 1
}

// DecodeLast decodes the scalar whose encoding ends just before code unit i,
// which must be the start of a scalar.
func (c Core) DecodeLast(i int) (rune, int) {
	if c.IsTrailingSurrogate(i - 1) {
		r, _ := c.Decode(i - 2)
		return r, 2
	}
	r, _ := c.Decode(i - 1)
	return r, 1
}

// IsTrailingSurrogate returns whether code unit i is the second half of a
// surrogate pair, i.e. whether i falls strictly inside a scalar's encoding.
func (c Core) IsTrailingSurrogate(i int) bool {
	if i <= 0 || i >= c.Count() {
		return false
	}
	u := c.At(i)
	if u < surrTrail || u >= surrEnd {
		return false
	}
	v := c.At(i - 1)
	return v >= surrLead && v < surrTrail
}

// Scalars returns an iterator over the scalars starting at code unit i, along
// with the offsets they start at.
func (c Core) Scalars(i int) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		if narrow := c.Narrow(); narrow != nil {
			for j, b := range narrow[i:] {
				if !yield(i+j, rune(b)) {
					return
				}
			}
			return
		}

		for i < c.Count() {
			r, n := c.Decode(i)
			if !yield(i, r) {
				return
			}
			i += n
		}
	}
}
