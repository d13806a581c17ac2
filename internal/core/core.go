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

// Package core contains the storage representation shared by all views of a
// string: a window of code units over either a native [buffer.Buffer] or a
// foreign string object.
package core

import (
	"fmt"

	"buf.build/go/hyperstr/internal/buffer"
	"buf.build/go/hyperstr/internal/debug"
	"buf.build/go/hyperstr/internal/xunsafe"
	"buf.build/go/hyperstr/internal/zc"
)

// Kind is the storage variant of a [Core].
type Kind uint8

const (
	Empty   Kind = iota // No storage at all.
	Native              // A window into a *buffer.Buffer.
	Foreign             // A window into a Handle.
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Native:
		return "native"
	case Foreign:
		return "foreign"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Handle is the capability set of a string object allocated by some other
// runtime. Core only ever reads through these methods.
//
// Implementations should be pointer-shaped, since the identity of a handle is
// the address it holds.
type Handle interface {
	// Len returns the number of UTF-16 code units in the string.
	Len() int
	// CharacterAt returns the UTF-16 code unit at index i.
	CharacterAt(i int) uint16
	// UTF16 returns the string's contiguous UTF-16 storage, if it has any.
	// The returned slice must not be written to by anyone.
	UTF16() []uint16
}

// Core is a tagged union of the storage variants for a string.
//
// The zero value is the empty string. Cores are values: slicing one produces
// a new Core that shares the same backing storage.
type Core struct {
	kind   Kind
	window zc.Range

	buf    *buffer.Buffer // Set if kind == Native.
	handle Handle         // Set if kind == Foreign.
	wide   []uint16       // handle.UTF16(), cached.
}

// NewNative returns a Core over the whole of b.
func NewNative(b *buffer.Buffer) Core {
	if b.Len() == 0 && !b.Owned() {
		return Core{}
	}
	return Core{kind: Native, window: zc.New(0, b.Len()), buf: b}
}

// NewForeign returns a Core over the whole of h, without copying anything.
func NewForeign(h Handle) Core {
	c := Core{
		kind:   Foreign,
		window: zc.New(0, h.Len()),
		handle: h,
		wide:   h.UTF16(),
	}
	debug.Assert(c.wide == nil || len(c.wide) == h.Len(),
		"foreign UTF-16 storage has length %d, want %d", len(c.wide), h.Len())

	c.log("wrap", "%T, contiguous: %v", h, c.wide != nil)
	return c
}

// Kind returns which storage variant this is.
func (c Core) Kind() Kind { return c.kind }

// Count returns the number of code units visible through this Core.
func (c Core) Count() int { return c.window.Len() }

// Window returns the visible window into the backing storage.
func (c Core) Window() zc.Range { return c.window }

// At returns the i-th visible code unit, widened to UTF-16.
func (c Core) At(i int) uint16 {
	debug.Assert(0 <= i && i < c.Count(), "index out of range [%d] with count %d", i, c.Count())
	j := c.window.Start() + i

	switch c.kind {
	case Native:
		if c.buf.Width() == 1 {
			return uint16(c.buf.Narrow()[j])
		}
		return c.buf.Wide()[j]
	case Foreign:
		if c.wide != nil {
			return c.wide[j]
		}
		return c.handle.CharacterAt(j)
	default:
		panic(fmt.Sprintf("hyperstr: index out of range [%d] with count 0", i))
	}
}

// Slice returns the window [i:j] of this Core. It never allocates or copies.
func (c Core) Slice(i, j int) Core {
	if i < 0 || i > j || j > c.Count() {
		panic(fmt.Sprintf("hyperstr: slice bounds out of range [%d:%d] with count %d", i, j, c.Count()))
	}
	if c.kind == Empty {
		return c
	}

	c.window = c.window.Sub(i, j)
	c.log("slice", "[%d:%d]", i, j)
	return c
}

// HasContiguousStorage returns whether every visible code unit lives in a
// single addressable run of memory.
func (c Core) HasContiguousStorage() bool {
	switch c.kind {
	case Foreign:
		return c.wide != nil
	default:
		return true
	}
}

// NativeBuffer returns the native buffer backing this Core, if any.
func (c Core) NativeBuffer() *buffer.Buffer {
	if c.kind != Native {
		return nil
	}
	return c.buf
}

// ForeignBuffer returns the foreign string backing this Core, if any.
func (c Core) ForeignBuffer() Handle {
	if c.kind != Foreign {
		return nil
	}
	return c.handle
}

// ElementWidth returns the width of the backing code units, in bytes.
func (c Core) ElementWidth() int {
	switch c.kind {
	case Native:
		return c.buf.Width()
	case Foreign:
		return 2
	default:
		return 1
	}
}

// IsASCII returns whether this Core is known to contain only ASCII.
func (c Core) IsASCII() bool { return c.ElementWidth() == 1 }

// Narrow returns the visible code units, if they are stored contiguously one
// byte each.
func (c Core) Narrow() []byte {
	if c.kind != Native || c.buf.Width() != 1 {
		return nil
	}
	return zc.Slice(c.window, c.buf.Narrow())
}

// Wide returns the visible code units, if they are stored contiguously as
// UTF-16.
func (c Core) Wide() []uint16 {
	switch {
	case c.kind == Native && c.buf.Width() == 2:
		return zc.Slice(c.window, c.buf.Wide())
	case c.kind == Foreign && c.wide != nil:
		return zc.Slice(c.window, c.wide)
	default:
		return nil
	}
}

// CopyUTF16 copies the visible code units into dst, which must have room for
// all of them, and returns how many were copied.
func (c Core) CopyUTF16(dst []uint16) int {
	n := c.Count()
	dst = dst[:n]
	switch {
	case c.kind == Empty:
	case c.HasContiguousStorage() && c.ElementWidth() == 2:
		copy(dst, c.Wide())
	case c.kind == Native:
		for i, b := range c.Narrow() {
			dst[i] = uint16(b)
		}
	default:
		for i := range dst {
			dst[i] = c.At(i)
		}
	}
	return n
}

// Identity renders the address of a foreign handle as "@0x...", or nothing if
// h is not pointer-shaped and so has no stable address.
func Identity(h Handle) string {
	if !xunsafe.IsDirectAny(h) {
		return ""
	}
	return fmt.Sprintf("@%v", xunsafe.AnyAddr(h))
}

// Format implements [fmt.Formatter].
//
// This renders a description of the storage, which is used for diagnostics
// and for testing that storage is shared rather than copied.
func (c Core) Format(s fmt.State, verb rune) {
	switch c.kind {
	case Native:
		if c.buf.Owned() {
			fmt.Fprintf(s, "Contiguous(owner: .Native@%v[%d...%d], capacity = %d)",
				xunsafe.AddrOf(c.buf), c.window.Start(), c.window.End(), c.buf.Cap())
			return
		}
	case Foreign:
		if c.wide != nil {
			fmt.Fprintf(s, "Contiguous(owner: .Foreign%s, count: %d)",
				Identity(c.handle), c.Count())
			return
		}
		fmt.Fprintf(s, "Opaque(buffer: .Foreign%s[%d...%d])",
			Identity(c.handle), c.window.Start(), c.window.End())
		return
	}
	fmt.Fprintf(s, "Contiguous(owner: null, count: %d)", c.Count())
}

func (c Core) log(op, format string, args ...any) {
	debug.Log([]any{"%v%v", c.kind, c.window}, op, format, args...)
}
