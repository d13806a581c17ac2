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
	"fmt"
	"iter"
	"unicode/utf8"

	"buf.build/go/hyperstr/internal/buffer"
	"buf.build/go/hyperstr/internal/core"
	"buf.build/go/hyperstr/internal/debug"
	"buf.build/go/hyperstr/internal/xunsafe"
)

// String is an immutable Unicode string.
//
// A String is a small value that refers to shared storage; copying it, or
// slicing it, never copies the text. The zero value is the empty string.
//
// Strings are ordered and compared as sequences of Unicode scalars; see
// [Compare].
type String struct {
	core core.Core
	seg  Segmenter
}

// New converts a Go string into a String.
//
// By default, ASCII text is borrowed rather than copied, and anything else is
// transcoded into UTF-16. Invalid UTF-8 is replaced with U+FFFD; use [Parse]
// to reject it instead.
func New(text string, opts ...Option) String {
	o := newOptions(opts)
	ascii, units := buffer.Scan(text)

	var buf *buffer.Buffer
	switch {
	case units == 0 && !o.owned:
		return String{seg: o.segmenter}
	case ascii && !o.wide && !o.owned && o.capacity <= units:
		buf = buffer.Borrow(text)
	default:
		width := 2
		if ascii && !o.wide {
			width = 1
		}
		buf = buffer.Encode(text, units, width, o.capacity, o.owned)
	}

	return String{core: core.NewNative(buf), seg: o.segmenter}
}

// FromRunes converts a sequence of scalars into a String.
//
// Surrogate code points and other invalid runes are replaced with U+FFFD.
func FromRunes(runes []rune, opts ...Option) String {
	return New(string(runes), opts...)
}

// Parse converts UTF-8 text into a String.
//
// Unlike [New], this rejects invalid UTF-8, returning a [*ParseError].
func Parse(text []byte, opts ...Option) (String, error) {
	if offset, ok := buffer.Validate(text); !ok {
		return String{}, &ParseError{offset: offset}
	}
	return New(string(text), opts...), nil
}

// Concat concatenates strings into a new, owned buffer.
//
// The buffer's capacity is rounded up to leave room for further appends. The
// result uses the segmenter of the first argument.
func Concat(parts ...String) String {
	if len(parts) == 0 {
		return String{}
	}

	n, width := 0, 1
	for _, part := range parts {
		n += part.core.Count()
		if !part.IsASCII() {
			width = 2
		}
	}
	if n == 0 {
		return String{seg: parts[0].seg}
	}

	buf := buffer.New(width, n, buffer.Grow(n), true)
	if width == 1 {
		out := buf.Narrow()
		for _, part := range parts {
			out = out[copy(out, part.core.Narrow()):]
		}
	} else {
		out := buf.Wide()
		for _, part := range parts {
			out = out[part.core.CopyUTF16(out):]
		}
	}

	return String{core: core.NewNative(buf), seg: parts[0].seg}
}

// IsEmpty returns whether this string has no characters.
func (s String) IsEmpty() bool {
	return s.core.Count() == 0
}

// IsASCII returns whether this string is stored one byte per character, which
// implies it is all ASCII.
//
// This may return false for ASCII text that happens to be stored as UTF-16.
func (s String) IsASCII() bool {
	return s.core.IsASCII()
}

// HasContiguousStorage returns whether all of this string's code units live in
// one run of memory, as opposed to a foreign object that can only be read one
// code unit at a time.
func (s String) HasContiguousStorage() bool {
	return s.core.HasContiguousStorage()
}

// String converts this string into a Go string.
//
// For strings stored one byte per character, this does not copy.
func (s String) String() string {
	if narrow := s.core.Narrow(); narrow != nil {
		// Buffers are never written to after construction.
		return xunsafe.SliceToString(narrow)
	}

	buf := make([]byte, 0, s.core.Count())
	for _, r := range s.core.Scalars(0) {
		buf = utf8.AppendRune(buf, r)
	}
	return xunsafe.SliceToString(buf)
}

// Format implements [fmt.Formatter].
//
// All verbs behave as they would for the result of [String.String].
func (s String) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), s.String())
}

// StartIndex returns the index of the first grapheme cluster.
func (s String) StartIndex() Index {
	return s.Graphemes().StartIndex()
}

// EndIndex returns the past-the-end index of this string.
func (s String) EndIndex() Index {
	return s.Graphemes().EndIndex()
}

// Next returns the index of the grapheme cluster after the one at i.
func (s String) Next(i Index) Index {
	return s.Graphemes().Next(i)
}

// At returns the grapheme cluster at i.
func (s String) At(i Index) String {
	return s.Graphemes().At(i)
}

// All returns an iterator over the grapheme clusters of this string.
func (s String) All() iter.Seq2[Index, String] {
	return s.Graphemes().All()
}

// Slice returns the characters between i and j, without copying.
func (s String) Slice(i, j Index) String {
	s.core = s.core.Slice(i.offset, j.offset)
	return s
}

// UTF8 returns a view of this string's UTF-8 encoding.
func (s String) UTF8() UTF8View {
	return UTF8View{s.core}
}

// UTF16 returns a view of this string's UTF-16 encoding.
func (s String) UTF16() UTF16View {
	return UTF16View{s.core}
}

// Scalars returns a view of this string's Unicode scalars.
func (s String) Scalars() ScalarView {
	return ScalarView{s.core}
}

// Graphemes returns a view of this string's extended grapheme clusters.
//
// This is the default view of a String.
func (s String) Graphemes() GraphemeView {
	seg := s.seg
	if seg == nil {
		seg = UnicodeSegmenter{}
	}
	return GraphemeView{s.core, seg}
}

func (s String) log(op, format string, args ...any) {
	debug.Log([]any{"%v", s.core.Window()}, op, format, args...)
}

// checkIndex panics if offset does not refer to an element of a view with
// count code units.
func checkIndex(offset, count int, i any) {
	if offset < 0 || offset >= count {
		panic(fmt.Sprintf("hyperstr: index %v out of range with count %d", i, count))
	}
}
