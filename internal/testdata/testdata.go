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

// Package testdata contains a corpus of strings, along with their expected
// encodings and segmentation, for exercising every view of every storage
// variant of a [hyperstr.String].
package testdata

import (
	"bytes"
	"embed"
	"encoding/hex"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"buf.build/go/hyperstr"
	"buf.build/go/hyperstr/internal/debug"
	"buf.build/go/hyperstr/internal/foreign"
)

//go:embed strings
var testdata embed.FS

// Harness is a generalization of [testing.TB] that also includes the
// [testing.T.Run] method. It must be generic because the signature of this
// function varies across [testing.T] and [testing.B].
type Harness[T any] interface {
	testing.TB
	Run(string, func(T)) bool
}

// TestCase is a test case from the test data corpus.
type TestCase struct {
	Name string `yaml:"-"`

	Text string `yaml:"text"`
	// Whether Text is all ASCII.
	ASCII bool `yaml:"ascii"`

	// Expected encodings, as whitespace-separated hex.
	UTF8Hex  string `yaml:"utf8"`
	UTF16Hex string `yaml:"utf16"`

	// The number of scalars.
	Scalars int `yaml:"scalars"`
	// The expected grapheme clusters, in order.
	Graphemes []string `yaml:"graphemes"`
	// UTF-16 offsets that are the second half of a surrogate pair, and thus
	// have no equivalent in any other view.
	UTF16Gaps []int `yaml:"utf16_gaps"`

	UTF8  []byte   `yaml:"-"`
	UTF16 []uint16 `yaml:"-"`
}

// Variant is one way of storing a test case's text.
type Variant struct {
	Name   string
	String hyperstr.String
}

// RunAll runs all of the test cases against the given harness.
func RunAll[T Harness[T]](t T, f func(T, *TestCase)) {
	t.Helper()

	err := fs.WalkDir(testdata, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err, "loading test %q", path)

		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		t.Run(strings.TrimPrefix(path, "strings/"), func(t T) {
			if t, ok := any(t).(*testing.T); ok {
				t.Parallel()
			}

			data, err := fs.ReadFile(testdata, path)
			require.NoError(t, err, "loading test %q", path)

			f(t, parseTestCase(t, path, data))
		})

		return nil
	})
	require.NoError(t, err)
}

// Variants returns the test case's text in every supported kind of storage.
//
// All of them must behave identically through every view.
func (test *TestCase) Variants() []Variant {
	text := test.Text
	padded := hyperstr.Concat(hyperstr.New("<<"), hyperstr.New(text), hyperstr.New(">>"))
	foreignSlice := sliceUTF16(hyperstr.FromForeign(foreign.New("<<"+text+">>")), 2, 2+len(test.UTF16))

	return []Variant{
		{"literal", hyperstr.New(text)},
		{"wide", hyperstr.New(text, hyperstr.WithWideStorage(true))},
		{"owned", hyperstr.New(text, hyperstr.WithOwnedStorage(true), hyperstr.WithCapacity(64))},
		{"runes", hyperstr.FromRunes([]rune(text))},
		{"foreign", hyperstr.FromForeign(foreign.New(text))},
		{"foreign16", hyperstr.FromForeign(foreign.NewUTF16(test.UTF16))},
		{"proxy", hyperstr.FromForeign(hyperstr.New(text).Foreign())},
		{"concat", sliceUTF16(padded, 2, 2+len(test.UTF16))},
		{"foreign-slice", foreignSlice},
		{"foreign-slice-proxy", hyperstr.FromForeign(foreignSlice.Foreign())},
	}
}

// sliceUTF16 slices s by UTF-16 offsets, which must be cluster boundaries.
func sliceUTF16(s hyperstr.String, i, j int) hyperstr.String {
	u16 := s.UTF16()
	start, ok1 := s.Graphemes().FromUTF16(u16.Index(i))
	end, ok2 := s.Graphemes().FromUTF16(u16.Index(j))
	if !ok1 || !ok2 {
		panic("testdata: slice of padded string is not on a cluster boundary")
	}
	return s.Slice(start, end)
}

// parseTestCase parses a single test case from the given data.
//
// This will call t.FailNow() if parsing fails.
func parseTestCase(t testing.TB, path string, file []byte) *TestCase {
	t.Helper()
	defer debug.WithTesting(t)()

	require.True(t, bytes.HasSuffix(file, []byte("\n")), "missing trailing newline in %q", path)

	test := new(TestCase)
	dec := yaml.NewDecoder(bytes.NewReader(file))
	dec.KnownFields(true)
	err := dec.Decode(&test)
	require.NoError(t, err, "loading test %q", path)

	test.Name = strings.TrimPrefix(path, "strings/")

	test.UTF8, err = hex.DecodeString(strings.Join(strings.Fields(test.UTF8Hex), ""))
	require.NoError(t, err, "loading test %q", path)

	for _, word := range strings.Fields(test.UTF16Hex) {
		u, err := strconv.ParseUint(word, 16, 16)
		require.NoError(t, err, "loading test %q", path)
		test.UTF16 = append(test.UTF16, uint16(u))
	}

	require.Equal(t, test.Text, string(test.UTF8), "utf8 in %q does not match text", path)
	require.Equal(t, test.Text, strings.Join(test.Graphemes, ""), "graphemes in %q do not match text", path)
	return test
}
