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

// Package foreign provides a string object that lives outside of hyperstr's
// own storage, for exercising the bridging paths.
//
// A String stores its text either as Latin-1 bytes or as UTF-16 code units,
// like a typical host-runtime string class does. Only the latter exposes
// contiguous UTF-16 storage.
package foreign

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// String is a foreign string object.
type String struct {
	latin1 []byte
	utf16  []uint16
}

// New allocates a new foreign string holding s.
//
// If every rune of s fits in Latin-1, s is stored one byte per character.
// Otherwise, it is stored as UTF-16. Invalid UTF-8 becomes U+FFFD.
func New(s string) *String {
	if b, ok := encodeLatin1(s); ok {
		return &String{latin1: b}
	}

	units := make([]uint16, 0, len(s))
	for _, r := range s {
		units = utf16.AppendRune(units, r)
	}
	return &String{utf16: units}
}

// NewUTF16 allocates a new foreign string with UTF-16 storage, copied from
// units.
func NewUTF16(units []uint16) *String {
	// Always non-nil, so that an empty string still has contiguous storage.
	return &String{utf16: append(make([]uint16, 0, len(units)), units...)}
}

// Len returns the number of UTF-16 code units in this string.
func (s *String) Len() int {
	if s.latin1 != nil {
		return len(s.latin1)
	}
	return len(s.utf16)
}

// CharacterAt returns the i-th UTF-16 code unit of this string.
func (s *String) CharacterAt(i int) uint16 {
	if s.latin1 != nil {
		return uint16(charmap.ISO8859_1.DecodeByte(s.latin1[i]))
	}
	return s.utf16[i]
}

// UTF16 returns this string's storage, if it is stored as UTF-16.
func (s *String) UTF16() []uint16 {
	return s.utf16
}

// String implements [fmt.Stringer].
func (s *String) String() string {
	if s.latin1 != nil {
		text, err := charmap.ISO8859_1.NewDecoder().Bytes(s.latin1)
		if err != nil {
			// Every byte is valid Latin-1.
			panic(err)
		}
		return string(text)
	}
	return string(utf16.Decode(s.utf16))
}

// Format implements [fmt.Formatter].
func (s *String) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", s.String())
	default:
		fmt.Fprint(f, s.String())
	}
}

func encodeLatin1(s string) ([]byte, bool) {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, false
		}
		b = append(b, c)
	}
	return b, true
}
