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

package hyperstr

// Option is a configuration setting for constructing a [String].
type Option struct{ apply func(*options) }

type options struct {
	segmenter Segmenter
	wide      bool
	owned     bool
	capacity  int
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt.apply(&o)
	}
	if o.capacity > 0 {
		o.owned = true
	}
	return o
}

// WithSegmenter sets the grapheme cluster boundary detector used by the
// [GraphemeView] of the resulting string, and of any slices of it.
//
// The default is [UnicodeSegmenter].
func WithSegmenter(seg Segmenter) Option {
	return Option{func(o *options) { o.segmenter = seg }}
}

// WithWideStorage sets whether text is always stored as UTF-16, even if it is
// all ASCII.
func WithWideStorage(wide bool) Option {
	return Option{func(o *options) { o.wide = wide }}
}

// WithOwnedStorage sets whether text is always copied into a buffer owned by
// the resulting string, instead of borrowing it when possible.
//
// Owned buffers show up as the owner in [Repr]; borrowed ones, like literal
// storage, do not.
func WithOwnedStorage(owned bool) Option {
	return Option{func(o *options) { o.owned = owned }}
}

// WithCapacity sets the minimum capacity, in code units, of any buffer
// allocated for the resulting string.
//
// Reserving capacity only makes sense for a buffer the string owns, so a
// positive capacity implies [WithOwnedStorage], and shows up in [Repr].
func WithCapacity(n int) Option {
	return Option{func(o *options) { o.capacity = max(n, 0) }}
}
