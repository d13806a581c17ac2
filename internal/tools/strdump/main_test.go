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

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/hyperstr"
)

func TestSliceClusters(t *testing.T) {
	t.Parallel()

	s := hyperstr.New("\U0001F3C2\u2603\u2745\u2746\u2744\ufe0e\u26c4\ufe0f\u2744\ufe0f")

	tests := []struct {
		expr, want, err string
	}{
		{expr: "2:6", want: "\u2745\u2746\u2744\ufe0e\u26c4\ufe0f"},
		{expr: ":1", want: "\U0001F3C2"},
		{expr: "6:", want: "\u2744\ufe0f"},
		{expr: ":", want: s.String()},
		{expr: "3", err: "missing colon"},
		{expr: "4:2", err: "4 > 2"},
		{expr: "0:8", err: "for 7 clusters"},
	}

	for _, tt := range tests {
		got, err := sliceClusters(s, tt.expr)
		if tt.err != "" {
			assert.ErrorContains(t, err, tt.err, tt.expr)
			continue
		}
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got.String(), tt.expr)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	out := new(strings.Builder)
	d := &dumper{out: out, views: []string{"utf8", "utf16", "scalars", "graphemes", "map"}}
	require.NoError(t, d.dump("\U0001F3C2x"))

	assert.Equal(t, `repr: String(Contiguous(owner: null, count: 3)) = "`+"\U0001F3C2x"+`"
utf8:    [f0 9f 8f 82 78]
utf16:   [d83c dfc2 0078]
scalars: [U+1F3C2 U+0078]
graphemes:
     0  `+"\U0001F3C2"+`  [f0 9f 8f 82]
     2  x   [78]
utf16 -> utf8:
     0  d83c  [0:828f9ff0]
     1  dfc2  invalid
     2  0078  [2:ffffff78]
`, out.String())

	assert.Error(t, (&dumper{out: out, views: []string{"bogus"}}).dump("x"))
}

func TestDumpFlags(t *testing.T) {
	t.Parallel()

	out := new(strings.Builder)
	d := &dumper{out: out, views: []string{"utf16"}, foreign: true, wide: true}
	require.ErrorContains(t, d.dump("x"), "-wide cannot be combined with -foreign")
	assert.Empty(t, out.String())

	d.wide = false
	require.NoError(t, d.dump("x"))
	assert.Contains(t, out.String(), "foreign: ")

	out.Reset()
	d = &dumper{out: out, views: []string{"utf16"}, wide: true}
	require.NoError(t, d.dump("x"))
	assert.Contains(t, out.String(), "repr: ")
}
