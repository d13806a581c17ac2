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
	"math/bits"
	"unicode/utf8"

	"buf.build/go/hyperstr/internal/core"
	"buf.build/go/hyperstr/internal/debug"
)

// UTF8View is a view of a [String]'s UTF-8 encoding.
//
// Bytes are transcoded from the underlying code units on demand.
type UTF8View struct {
	core core.Core
}

// UTF8Index is an index into a [UTF8View].
//
// Indices are only meaningful for the view that produced them; comparing
// indices from different strings is not.
type UTF8Index struct {
	// The code unit offset of the scalar that contains this byte.
	unit int
	// The bytes of that scalar that have not been stepped over yet, packed
	// low byte first, with the unused high bytes set to 0xff. Since 0xff never
	// occurs in UTF-8, the low byte is 0xff only at the end index.
	//
	// This is a pure function of the position, so indices may be compared with
	// ==.
	bytes uint32
}

const noBytes = 0xffffffff

// StartIndex returns the index of the first byte.
func (v UTF8View) StartIndex() UTF8Index {
	return v.indexAt(0)
}

// EndIndex returns the past-the-end index.
func (v UTF8View) EndIndex() UTF8Index {
	return UTF8Index{v.core.Count(), noBytes}
}

// Next returns the index of the byte after i.
func (v UTF8View) Next(i UTF8Index) UTF8Index {
	checkIndex(i.unit, v.core.Count(), i)

	rest := i.bytes>>8 | 0xff<<24
	if rest&0xff != 0xff {
		return UTF8Index{i.unit, rest}
	}

	_, n := v.core.Decode(i.unit)
	return v.indexAt(i.unit + n)
}

// At returns the byte at i.
func (v UTF8View) At(i UTF8Index) byte {
	checkIndex(i.unit, v.core.Count(), i)
	return byte(i.bytes)
}

// Len returns the number of bytes in the UTF-8 encoding.
//
// This is linear in the length of the string, unless it is stored one byte
// per character.
func (v UTF8View) Len() int {
	if v.core.IsASCII() {
		return v.core.Count()
	}

	n := 0
	for _, r := range v.core.Scalars(0) {
		n += utf8.RuneLen(r)
	}
	return n
}

// All returns an iterator over the bytes of this view.
func (v UTF8View) All() iter.Seq2[UTF8Index, byte] {
	return func(yield func(UTF8Index, byte) bool) {
		end := v.EndIndex()
		for i := v.StartIndex(); i != end; i = v.Next(i) {
			if !yield(i, byte(i.bytes)) {
				return
			}
		}
	}
}

// Bytes appends the UTF-8 encoding of the view to buf.
func (v UTF8View) Bytes(buf []byte) []byte {
	if narrow := v.core.Narrow(); narrow != nil {
		return append(buf, narrow...)
	}
	for _, r := range v.core.Scalars(0) {
		buf = utf8.AppendRune(buf, r)
	}
	return buf
}

// indexAt returns the index of the first byte of the scalar at the given code
// unit.
func (v UTF8View) indexAt(unit int) UTF8Index {
	if unit == v.core.Count() {
		return v.EndIndex()
	}

	r, _ := v.core.Decode(unit)
	var enc [4]byte
	n := utf8.EncodeRune(enc[:], r)

	packed := uint32(noBytes)
	for k := n - 1; k >= 0; k-- {
		packed = packed<<8 | uint32(enc[k])
	}
	debug.Log(nil, "utf8", "unit %d: %U -> %#08x", unit, r, packed)
	return UTF8Index{unit, packed}
}

// remaining returns how many bytes of the current scalar have not been
// stepped over yet.
func (i UTF8Index) remaining() int {
	return 4 - bits.LeadingZeros32(^i.bytes)/8
}

// Compare returns -1, 0 or 1 depending on whether i is before, equal to, or
// after j.
func (i UTF8Index) Compare(j UTF8Index) int {
	if c := cmp.Compare(i.unit, j.unit); c != 0 {
		return c
	}
	// Fewer bytes remaining means further along.
	return cmp.Compare(j.remaining(), i.remaining())
}

// Less returns whether i is before j.
func (i UTF8Index) Less(j UTF8Index) bool {
	return i.Compare(j) < 0
}

// Format implements [fmt.Formatter].
func (i UTF8Index) Format(s fmt.State, verb rune) {
	debug.Fprintf("[%d:%x]", i.unit, i.bytes).Format(s, verb)
}
