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

package hyperstr_test

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/hyperstr"
)

func FuzzParse(f *testing.F) {
	f.Add([]byte(summer))
	f.Add([]byte(winter))
	f.Add([]byte("e\u0301x\r\n"))
	f.Add([]byte("\U0001F1FA\U0001F1F8\U0001F1EB"))
	f.Add([]byte("abc\xffdef"))
	f.Add([]byte("\xed\xa0\x80"))

	f.Fuzz(func(t *testing.T, b []byte) {
		s, err := hyperstr.Parse(b)
		if !utf8.Valid(b) {
			var perr *hyperstr.ParseError
			require.ErrorAs(t, err, &perr)
			require.ErrorIs(t, err, hyperstr.ErrInvalidUTF8)
			assert.True(t, utf8.Valid(b[:perr.Offset()]))
			return
		}
		require.NoError(t, err)

		text := string(b)
		assert.Equal(t, text, s.String())
		assert.Equal(t, len(b), s.UTF8().Len())
		assert.Equal(t, len(utf16.Encode([]rune(text))), s.UTF16().Len())
		assert.Equal(t, utf8.RuneCount(b), s.Scalars().Len())
		assert.Equal(t, uniseg.GraphemeClusterCount(text), s.Graphemes().Len())
		assert.Equal(t, 0, hyperstr.Compare(s, hyperstr.New(text, hyperstr.WithWideStorage(true))))
	})
}
