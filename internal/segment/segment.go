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

// Package segment detects extended grapheme cluster boundaries, as defined by
// Unicode Standard Annex #29.
package segment

import (
	"cmp"
	"iter"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"buf.build/go/hyperstr/internal/debug"
	"buf.build/go/hyperstr/internal/sync2"
)

const (
	zwj  = '\u200d'
	zwnj = '\u200c'
)

// scratch is UTF-8 text re-encoded from a scalar iterator, along with where
// each scalar landed.
type scratch struct {
	text  []byte
	marks []mark
}

// mark records that the scalar at code unit offset starts at byte at of the
// scratch text.
type mark struct {
	at, offset int
}

var scratches sync2.Pool[scratch, *scratch]

func (s *scratch) Reset() {
	s.text = s.text[:0]
	s.marks = s.marks[:0]
}

func (s *scratch) push(offset int, r rune) {
	s.marks = append(s.marks, mark{len(s.text), offset})
	s.text = utf8.AppendRune(s.text, r)
}

// split returns the offset of the scalar that follows the first cluster of the
// buffered text. It fails if the cluster might continue past the buffer.
func (s *scratch) split() (int, bool) {
	cluster, rest, _, _ := uniseg.FirstGraphemeCluster(s.text, -1)
	if len(rest) == 0 {
		return 0, false
	}

	// Clusters are made of whole scalars, so the cluster ends at some mark.
	k, _ := slices.BinarySearchFunc(s.marks, len(cluster), func(m mark, at int) int {
		return cmp.Compare(m.at, at)
	})
	return s.marks[k].offset, true
}

// Next returns the offset at which the cluster starting with the first scalar
// of runes ends, or end if it runs to the end of the text.
//
// runes must start at a cluster boundary and yield at least one scalar. The
// text is buffered in doubling chunks, so this is linear in the length of
// the cluster.
func Next(runes iter.Seq2[int, rune], end int) int {
	s := scratches.Get()
	defer scratches.Put(s)

	check := 2
	for i, r := range runes {
		if len(s.marks) == check {
			if at, ok := s.split(); ok {
				return at
			}
			check *= 2
		}
		s.push(i, r)
	}

	if at, ok := s.split(); ok {
		return at
	}
	return end
}

// IsBoundary reports whether there is a cluster boundary immediately before
// the scalar at offset at.
//
// runes yields scalars along with their offsets, and must start at a cluster
// boundary no later than at; only the scalars up to and including the one at
// at are consumed. The end of the text is always a boundary.
func IsBoundary(runes iter.Seq2[int, rune], at int) bool {
	s := scratches.Get()
	defer scratches.Put(s)

	for i, r := range runes {
		if i > at {
			// at is in the middle of a scalar.
			return false
		}
		s.push(i, r)
		if i == at {
			break
		}
	}

	n := len(s.marks)
	if n <= 1 || s.marks[n-1].offset != at {
		// Either at is the start of the cluster, or the end of the text.
		return true
	}

	split := s.marks[n-1].at
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(s.text, -1)
	debug.Log(nil, "boundary", "%q|%q: %v", s.text[:split], s.text[split:], len(cluster) == split)
	return len(cluster) == split
}

// Pair reports whether there is a cluster boundary between the adjacent
// scalars p and x.
//
// known is false when the answer depends on the text before p: emoji ZWJ
// sequences, regional indicator pairs and Indic conjuncts all look further
// back than one scalar.
func Pair(p, x rune) (boundary, known bool) {
	var buf [2 * utf8.UTFMax]byte
	b := utf8.AppendRune(buf[:0], p)
	n := len(b)
	b = utf8.AppendRune(b, x)

	cluster, _, _, _ := uniseg.FirstGraphemeCluster(b, -1)
	if len(cluster) == n {
		return true, !extends(p)
	}

	// Nothing suppresses the break before an extending scalar except the
	// break after a control, and that one does not depend on context either.
	return false, x == zwj || unicode.In(x, unicode.Mn, unicode.Me)
}

// extends returns whether r may continue a cluster whose meaning depends on
// scalars before it. This is a superset of Grapheme_Extend.
func extends(r rune) bool {
	switch {
	case r == zwj, r == zwnj, r == '\uff9e', r == '\uff9f':
		return true
	case r >= '\U0001f3fb' && r <= '\U0001f3ff': // Emoji modifiers.
		return true
	default:
		return unicode.Is(unicode.M, r)
	}
}
