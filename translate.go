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

import "buf.build/go/hyperstr/internal/segment"

// This file contains the conversions between the index types of the different
// views of a string. Each conversion is a method on the target view, and
// fails, returning false, if the source index has no equivalent position in
// the target view. End indices always convert to end indices.

// FromIndex returns the index of the first byte of the cluster at i.
func (v UTF8View) FromIndex(i Index) UTF8Index {
	return v.indexAt(i.offset)
}

// FromScalar returns the index of the first byte of the scalar at i.
func (v UTF8View) FromScalar(i ScalarIndex) UTF8Index {
	return v.indexAt(i.offset)
}

// FromUTF16 returns the index of the first byte of the scalar that starts at
// i.
//
// This fails if i refers to the second half of a surrogate pair. The first
// half converts to the first byte of the four-byte encoding of the pair.
func (v UTF8View) FromUTF16(i UTF16Index) (UTF8Index, bool) {
	if v.core.IsTrailingSurrogate(i.offset) {
		return UTF8Index{}, false
	}
	return v.indexAt(i.offset), true
}

// FromIndex returns the index of the first code unit of the cluster at i.
func (v UTF16View) FromIndex(i Index) UTF16Index {
	return UTF16Index(i)
}

// FromScalar returns the index of the first code unit of the scalar at i.
func (v UTF16View) FromScalar(i ScalarIndex) UTF16Index {
	return UTF16Index(i)
}

// FromUTF8 returns the index of the first code unit of the scalar that
// starts at i.
//
// This fails if i is not the first byte of a scalar's encoding.
func (v UTF16View) FromUTF8(i UTF8Index) (UTF16Index, bool) {
	if !isLeadingByte(v.core.Count(), i) {
		return UTF16Index{}, false
	}
	return UTF16Index{i.unit}, true
}

// FromIndex returns the index of the first scalar of the cluster at i.
func (v ScalarView) FromIndex(i Index) ScalarIndex {
	return ScalarIndex(i)
}

// FromUTF8 returns the index of the scalar that starts at i.
//
// This fails if i is not the first byte of a scalar's encoding.
func (v ScalarView) FromUTF8(i UTF8Index) (ScalarIndex, bool) {
	if !isLeadingByte(v.core.Count(), i) {
		return ScalarIndex{}, false
	}
	return ScalarIndex{i.unit}, true
}

// FromUTF16 returns the index of the scalar that starts at i.
//
// This fails if i refers to the second half of a surrogate pair.
func (v ScalarView) FromUTF16(i UTF16Index) (ScalarIndex, bool) {
	if v.core.IsTrailingSurrogate(i.offset) {
		return ScalarIndex{}, false
	}
	return ScalarIndex(i), true
}

// FromScalar returns the index of the cluster that starts at i.
//
// This fails if i is not the first scalar of a cluster.
func (v GraphemeView) FromScalar(i ScalarIndex) (Index, bool) {
	if !v.isBoundary(i.offset) {
		return Index{}, false
	}
	return Index(i), true
}

// FromUTF8 returns the index of the cluster that starts at i.
//
// This fails if i is not the first byte of a cluster.
func (v GraphemeView) FromUTF8(i UTF8Index) (Index, bool) {
	s, ok := ScalarView{v.core}.FromUTF8(i)
	if !ok {
		return Index{}, false
	}
	return v.FromScalar(s)
}

// FromUTF16 returns the index of the cluster that starts at i.
//
// This fails if i is not the first code unit of a cluster.
func (v GraphemeView) FromUTF16(i UTF16Index) (Index, bool) {
	s, ok := ScalarView{v.core}.FromUTF16(i)
	if !ok {
		return Index{}, false
	}
	return v.FromScalar(s)
}

// isBoundary returns whether a cluster starts at the given code unit.
func (v GraphemeView) isBoundary(offset int) bool {
	if offset == 0 || offset == v.core.Count() {
		return true
	}
	if v.core.IsTrailingSurrogate(offset) {
		return false
	}

	// Cluster boundaries can only be found by walking forward from a known
	// boundary. Most boundaries are decided by the two scalars around them
	// alone, so back up to the nearest such one rather than to the start.
	start := 0
	if _, ok := v.seg.(UnicodeSegmenter); ok {
		for at := offset; at > 0; {
			p, n := v.core.DecodeLast(at)
			x, _ := v.core.Decode(at)
			boundary, known := segment.Pair(p, x)
			if known && at == offset {
				return boundary
			}
			if known && boundary {
				start = at
				break
			}
			at -= n
		}
	}

	i := Index{start}
	for i.offset < offset {
		i = v.Next(i)
	}
	return i.offset == offset
}

// isLeadingByte returns whether i points to the first byte of a scalar's
// encoding, or is the end index of a view with count code units.
func isLeadingByte(count int, i UTF8Index) bool {
	if i.unit == count {
		return i.bytes == noBytes
	}
	// The first byte of a UTF-8 encoding is never a continuation byte.
	return i.bytes&0xc0 != 0x80
}
