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

// Package zc provides helpers for working with zero-copy ranges.
package zc

import (
	"fmt"
	"math"

	"buf.build/go/hyperstr/internal/debug"
)

// Range is a window of code units relative to some larger backing store, such
// as the buffer of a string or the storage of a foreign string object.
//
// This is a packed representation of a value with the layout
//
//	struct {
//	  offset, len uint32
//	}
//
// The zero value faithfully represents an empty window at the start of its
// backing store.
type Range uint64

// New creates a new Range with the given start and length.
func New(offset, len int) Range {
	debug.Assert(offset >= 0 && len >= 0, "negative zc: [%d:+%d]", offset, len)
	debug.Assert(offset <= math.MaxUint32 && len <= math.MaxUint32,
		"offset too large for zc: [%d:+%d]", offset, len)
	return Range(offset) | Range(len)<<32
}

// Start returns the start offset of this window within its backing store.
func (r Range) Start() int { return int(uint32(r)) }

// End returns the end offset of this window within its backing store.
func (r Range) End() int { return r.Start() + r.Len() }

// Len returns the length of this Range.
func (r Range) Len() int { return int(r >> 32) }

// Sub returns the window [i:j] of r, relative to r's start.
//
// Like slicing, this requires 0 <= i <= j <= r.Len().
func (r Range) Sub(i, j int) Range {
	debug.Assert(0 <= i && i <= j && j <= r.Len(),
		"zc out of bounds: %v[%d:%d]", r, i, j)
	return New(r.Start()+i, j-i)
}

// Slice returns the contents of this window, given its backing store.
func Slice[S ~[]E, E any](r Range, src S) S {
	if r.Len() == 0 {
		return nil
	}
	return src[r.Start():r.End():r.End()]
}

// Format implements [fmt.Formatter].
func (r Range) Format(s fmt.State, verb rune) {
	debug.Fprintf("[%d:%d]", r.Start(), r.End()).Format(s, verb)
}
