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

// Package buffer provides immutable runs of 8-bit or 16-bit code units, which
// are the native storage for strings.
//
// A Buffer is written exactly once, by whoever allocates it, before it is
// shared. After that it is never written to again, so any number of strings
// may alias overlapping windows of it, on any number of goroutines.
package buffer

import (
	"fmt"
	"math/bits"
	"unicode/utf16"

	"buf.build/go/hyperstr/internal/debug"
	"buf.build/go/hyperstr/internal/xunsafe"
)

// Buffer is a contiguous run of code units.
//
// A width-1 buffer only ever holds ASCII. A width-2 buffer holds UTF-16, which
// may also happen to be all ASCII; such buffers are never demoted.
type Buffer struct {
	_ xunsafe.NoCopy

	narrow []byte
	wide   []uint16

	width uint8
	owned bool
}

// Borrow wraps an ASCII Go string without copying it.
//
// The resulting buffer is not owned: it is never reported as the owner of a
// string, in the same way that static literal storage isn't.
func Borrow(s string) *Buffer {
	debug.Assert(asciiPrefix(s) == len(s), "borrowing non-ASCII string %q", s)
	return &Buffer{
		narrow: xunsafe.StringToSlice[byte](s),
		width:  1,
	}
}

// New allocates a new buffer of n code units of the given width, with room for
// at least capacity code units.
//
// The caller must fill in the contents via [Buffer.Narrow] or [Buffer.Wide]
// before sharing the buffer.
func New(width, n, capacity int, owned bool) *Buffer {
	capacity = max(n, capacity)
	b := &Buffer{width: uint8(width), owned: owned}
	switch width {
	case 1:
		b.narrow = make([]byte, n, capacity)
	case 2:
		b.wide = make([]uint16, n, capacity)
	default:
		panic(fmt.Sprintf("hyperstr: invalid code unit width %d", width))
	}

	debug.Log([]any{"%p", b}, "new", "width: %d, len: %d, cap: %d, owned: %v", width, n, capacity, owned)
	return b
}

// Encode transcodes s, which must contain exactly units UTF-16 code units, into
// a new buffer.
//
// If width is 1, s must be ASCII. Invalid UTF-8 is replaced with U+FFFD.
func Encode(s string, units, width, capacity int, owned bool) *Buffer {
	b := New(width, units, capacity, owned)
	if width == 1 {
		copy(b.narrow, s)
		return b
	}

	w := b.wide[:0]
	for _, r := range s {
		w = utf16.AppendRune(w, r)
	}
	debug.Assert(len(w) == units, "miscounted code units: %d != %d", len(w), units)
	return b
}

// Width returns the width of this buffer's code units in bytes: 1 or 2.
func (b *Buffer) Width() int { return int(b.width) }

// IsASCII returns whether this buffer is known to contain only ASCII, which is
// the case exactly when it has byte-wide code units.
func (b *Buffer) IsASCII() bool { return b.width == 1 }

// Owned returns whether this buffer is heap storage that should be reported as
// the owner of the strings that refer to it.
func (b *Buffer) Owned() bool { return b.owned }

// Len returns the number of code units in this buffer.
func (b *Buffer) Len() int {
	if b.width == 1 {
		return len(b.narrow)
	}
	return len(b.wide)
}

// Cap returns the total capacity of this buffer, in code units.
func (b *Buffer) Cap() int {
	if b.width == 1 {
		return cap(b.narrow)
	}
	return cap(b.wide)
}

// Narrow returns the code units of a width-1 buffer, or nil.
func (b *Buffer) Narrow() []byte { return b.narrow }

// Wide returns the code units of a width-2 buffer, or nil.
func (b *Buffer) Wide() []uint16 { return b.wide }

// Format implements [fmt.Formatter].
func (b *Buffer) Format(s fmt.State, verb rune) {
	debug.Dict(
		debug.Fprintf("%p", b),
		"width", b.width,
		"len", b.Len(),
		"cap", b.Cap(),
		"owned", b.owned,
	).Format(s, verb)
}

// Grow returns the capacity to allocate for n code units of storage that may
// later be appended to: n rounded up to a power of two.
func Grow(n int) int {
	if n <= 1 {
		return n
	}
	return 1 << bits.Len(uint(n-1))
}
