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

package buffer_test

import (
	"fmt"
	"testing"
	"unicode/utf16"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/hyperstr/internal/buffer"
)

const winter = "\U0001F3C2\u2603\u2745\u2746\u2744\ufe0e\u26c4\ufe0f\u2744\ufe0f"

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		ascii bool
		units int
	}{
		{"", true, 0},
		{"foobar", true, 6},
		{"school's out!", true, 13},
		{"abcdefghijklmnopqrstuvwxyz", true, 26},
		{winter, false, 11},
		{"abcdefgh\u00e9", false, 9},
		{"abcdefghijklmnop\U0001F1FA\U0001F1F8", false, 20},
		{"\xff\xfe", false, 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.text), func(t *testing.T) {
			t.Parallel()

			ascii, units := buffer.Scan(tt.text)
			assert.Equal(t, tt.ascii, ascii)
			assert.Equal(t, tt.units, units)
			assert.Len(t, utf16.Encode([]rune(tt.text)), units)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		offset int
		ok     bool
	}{
		{"", 0, true},
		{"foobar", 6, true},
		{winter, len(winter), true},
		{"abcdefghij\xff", 10, false},
		{"ab\xed\xa0\x80", 2, false}, // Encoded surrogate.
		{"\xe2\x98", 0, false},       // Truncated.
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.text), func(t *testing.T) {
			t.Parallel()

			offset, ok := buffer.Validate([]byte(tt.text))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestBorrow(t *testing.T) {
	t.Parallel()

	s := "foobar"
	b := buffer.Borrow(s)
	assert.Equal(t, 1, b.Width())
	assert.True(t, b.IsASCII())
	assert.False(t, b.Owned())
	assert.Equal(t, 6, b.Len())
	assert.Nil(t, b.Wide())

	// Borrowing must not copy.
	assert.Equal(t, unsafe.StringData(s), &b.Narrow()[0])
}

func TestEncode(t *testing.T) {
	t.Parallel()

	b := buffer.Encode(winter, 11, 2, 0, false)
	assert.Equal(t, 2, b.Width())
	assert.False(t, b.IsASCII())
	assert.Equal(t, utf16.Encode([]rune(winter)), b.Wide())
	assert.Nil(t, b.Narrow())

	b = buffer.Encode("foobar", 6, 2, 0, false)
	assert.Equal(t, []uint16{'f', 'o', 'o', 'b', 'a', 'r'}, b.Wide())
	assert.False(t, b.IsASCII(), "wide buffers are never demoted")

	b = buffer.Encode("foobar", 6, 1, 16, true)
	require.Equal(t, []byte("foobar"), b.Narrow())
	assert.Equal(t, 16, b.Cap())
	assert.True(t, b.Owned())

	b = buffer.Encode("a\xffb", 3, 2, 0, false)
	assert.Equal(t, []uint16{'a', 0xfffd, 'b'}, b.Wide())
}

func TestGrow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, buffer.Grow(0))
	assert.Equal(t, 1, buffer.Grow(1))
	assert.Equal(t, 2, buffer.Grow(2))
	assert.Equal(t, 8, buffer.Grow(7))
	assert.Equal(t, 8, buffer.Grow(8))
	assert.Equal(t, 16, buffer.Grow(9))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	b := buffer.New(2, 3, 4, true)
	assert.Equal(t,
		fmt.Sprintf("%p{width: 2, len: 3, cap: 4, owned: true}", b),
		fmt.Sprint(b))
}
