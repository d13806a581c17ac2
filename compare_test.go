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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"buf.build/go/hyperstr"
	"buf.build/go/hyperstr/internal/foreign"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	s := hyperstr.New("ABCDEF")
	s1 := hyperstr.Concat(s, hyperstr.New("G"))

	assert.True(t, s.Equal(s))
	assert.False(t, s.Equal(s1))
	assert.False(t, s1.Equal(s))
	assert.True(t, s.Equal(hyperstr.New("ABCDEF")))

	// Storage does not matter.
	assert.True(t, s.Equal(hyperstr.New("ABCDEF", hyperstr.WithWideStorage(true))))
	assert.True(t, s.Equal(hyperstr.FromForeign(foreign.New("ABCDEF"))))
	assert.True(t, hyperstr.New(winter).Equal(hyperstr.FromForeign(foreign.New(winter))))

	// Unpaired surrogates read as U+FFFD.
	lone := hyperstr.FromForeign(foreign.NewUTF16([]uint16{'a', 0xd800}))
	assert.True(t, lone.Equal(hyperstr.New("a\ufffd")))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	so, sox, tocks := hyperstr.New("so"), hyperstr.New("sox"), hyperstr.New("tocks")
	assert.False(t, so.Less(so))
	assert.True(t, so.Less(sox))
	assert.True(t, so.Less(tocks))
	assert.True(t, sox.Less(tocks))
	assert.False(t, tocks.Less(so))

	assert.Equal(t, 0, hyperstr.Compare(so, so))
	assert.Equal(t, -1, hyperstr.Compare(so, sox))
	assert.Equal(t, 1, sox.Compare(so))

	// Scalar order, not code unit order: U+FFFD sorts before a supplementary
	// character, even though its UTF-16 encoding sorts after a surrogate.
	assert.True(t, hyperstr.New("\ufffd").Less(hyperstr.New("\U0001F3C2")))
	assert.True(t, hyperstr.New("z").Less(hyperstr.FromForeign(foreign.New("\u00e9"))))

	list := []hyperstr.String{
		tocks,
		hyperstr.FromForeign(foreign.New("sox")),
		hyperstr.New(winter),
		hyperstr.New("so", hyperstr.WithWideStorage(true)),
		hyperstr.String{},
	}
	slices.SortFunc(list, hyperstr.Compare)

	var got []string
	for _, s := range list {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{"", "so", "sox", "tocks", winter}, got)
}

func TestPrefixSuffix(t *testing.T) {
	t.Parallel()

	s := hyperstr.New(winter)
	assert.Equal(t,
		[]bool{true, false, true, false},
		[]bool{
			s.HasPrefix(hyperstr.New("\U0001F3C2\u2603")),
			s.HasPrefix(hyperstr.New("\u2603")),
			s.HasSuffix(hyperstr.New("\u26c4\ufe0f\u2744\ufe0f")),
			s.HasSuffix(hyperstr.New("\u2603")),
		},
	)

	assert.True(t, s.HasPrefix(hyperstr.String{}))
	assert.True(t, s.HasSuffix(hyperstr.String{}))
	assert.True(t, s.HasPrefix(s))
	assert.False(t, hyperstr.New("so").HasPrefix(hyperstr.New("sox")))

	// Never split a surrogate pair.
	lead := hyperstr.FromForeign(foreign.NewUTF16([]uint16{0xd83c}))
	trail := hyperstr.FromForeign(foreign.NewUTF16([]uint16{0xdfc2, 0x2603}))
	assert.False(t, s.HasPrefix(lead))
	assert.False(t, s.Slice(s.StartIndex(), s.Next(s.Next(s.StartIndex()))).HasSuffix(trail))
}
