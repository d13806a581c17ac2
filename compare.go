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
	"bytes"
	"cmp"
)

// Compare compares two strings lexicographically, by Unicode scalar value.
//
// The result is -1 if a < b, 0 if a == b and 1 if a > b. A string is less
// than any string it is a strict prefix of.
//
// Two strings are equal if they contain the same scalars, regardless of how
// they are stored.
func Compare(a, b String) int {
	x, y := a.core.Narrow(), b.core.Narrow()
	if x != nil && y != nil {
		return bytes.Compare(x, y)
	}

	i, j := 0, 0
	n, m := a.core.Count(), b.core.Count()
	for i < n && j < m {
		r, dr := a.core.Decode(i)
		s, ds := b.core.Decode(j)
		if r != s {
			return cmp.Compare(r, s)
		}
		i += dr
		j += ds
	}
	return cmp.Compare(n-i, m-j)
}

// Compare is shorthand for Compare(s, t).
func (s String) Compare(t String) int {
	return Compare(s, t)
}

// Equal returns whether s and t contain the same scalars.
func (s String) Equal(t String) bool {
	// Every scalar, including U+FFFD standing in for an unpaired surrogate,
	// has a fixed UTF-16 length.
	if s.core.Count() != t.core.Count() {
		return false
	}
	return Compare(s, t) == 0
}

// Less returns whether s sorts before t.
func (s String) Less(t String) bool {
	return Compare(s, t) < 0
}

// HasPrefix returns whether s begins with the scalars of prefix.
//
// A prefix never ends in the middle of a surrogate pair.
func (s String) HasPrefix(prefix String) bool {
	n := prefix.core.Count()
	if n > s.core.Count() || s.core.IsTrailingSurrogate(n) {
		return false
	}
	return String{core: s.core.Slice(0, n)}.Equal(prefix)
}

// HasSuffix returns whether s ends with the scalars of suffix.
//
// A suffix never begins in the middle of a surrogate pair.
func (s String) HasSuffix(suffix String) bool {
	n := s.core.Count() - suffix.core.Count()
	if n < 0 || s.core.IsTrailingSurrogate(n) {
		return false
	}
	return String{core: s.core.Slice(n, s.core.Count())}.Equal(suffix)
}
