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

package buffer

import (
	"unicode/utf8"
	"unsafe"

	"buf.build/go/hyperstr/internal/xunsafe"
)

// signBits has the sign bit of every byte in a word set.
const signBits = 0x8080808080808080

// Scan classifies literal text: it reports whether s is all ASCII, and how
// many UTF-16 code units s transcodes to.
//
// Invalid UTF-8 counts as one code unit per invalid byte, matching how it is
// transcoded (as U+FFFD).
func Scan(s string) (ascii bool, units int) {
	n := asciiPrefix(s)
	if n == len(s) {
		return true, n
	}

	units = n
	for _, r := range s[n:] {
		units++
		if r > 0xffff {
			units++ // Needs a surrogate pair.
		}
	}
	return false, units
}

// Validate checks that b is valid UTF-8. If it isn't, it returns the offset of
// the first byte that is not part of a valid encoding.
func Validate(b []byte) (offset int, ok bool) {
	n := asciiPrefix(xunsafe.SliceToString(b))
	for n < len(b) {
		if b[n] < utf8.RuneSelf {
			n++
			continue
		}

		r, size := utf8.DecodeRune(b[n:])
		if r == utf8.RuneError && size == 1 {
			return n, false
		}
		n += size
	}
	return n, true
}

// asciiPrefix returns the length of the longest prefix of s that is ASCII.
func asciiPrefix(s string) int {
	p := unsafe.StringData(s)
	n := 0

	// This first part checks eight bytes at a time. A set sign bit anywhere in
	// the word means we need to take the slow path to find out where.
	for ; n+8 <= len(s); n += 8 {
		if xunsafe.LoadWord[uint64](p, n)&signBits != 0 {
			break
		}
	}

	for n < len(s) && s[n] < utf8.RuneSelf {
		n++
	}
	return n
}
