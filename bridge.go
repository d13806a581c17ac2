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

import (
	"buf.build/go/hyperstr/internal/core"
)

// Foreign is a string object allocated by some other runtime, such as a host
// language's string class.
//
// hyperstr only ever reads a Foreign string through these methods, and never
// copies out of it eagerly. Implementations must be immutable, and should be
// pointer-shaped: the identity of a Foreign string is the address it holds,
// and [Repr] omits the address of any other kind of Foreign.
type Foreign = core.Handle

// Proxy is a [Foreign] string that refers to part of the storage of a
// [String]. It is produced by [String.Foreign] when there is no existing
// foreign object to return.
//
// Holding a Proxy keeps the original storage alive; it does not copy it.
type Proxy struct {
	core core.Core
}

var _ Foreign = (*Proxy)(nil)

// Len implements [Foreign].
func (p *Proxy) Len() int {
	return p.core.Count()
}

// CharacterAt implements [Foreign].
func (p *Proxy) CharacterAt(i int) uint16 {
	checkIndex(i, p.core.Count(), i)
	return p.core.At(i)
}

// UTF16 implements [Foreign].
//
// This returns nil unless the underlying storage is UTF-16.
func (p *Proxy) UTF16() []uint16 {
	return p.core.Wide()
}

// String implements [fmt.Stringer].
func (p *Proxy) String() string {
	return String{core: p.core}.String()
}

// FromForeign wraps a foreign string object without copying it.
//
// If f is a [Proxy] over contiguous storage, such as one returned by
// [String.Foreign], the original storage is recovered. Any other Foreign
// string, including a Proxy over a foreign object without contiguous
// storage, becomes the owner of the resulting String's storage.
func FromForeign(f Foreign, opts ...Option) String {
	o := newOptions(opts)
	if p, ok := f.(*Proxy); ok && p.core.HasContiguousStorage() {
		s := String{core: p.core, seg: o.segmenter}
		s.log("unwrap", "%p", p)
		return s
	}
	return String{core: core.NewForeign(f), seg: o.segmenter}
}

// Foreign converts this string into a foreign string object.
//
// If this string was created from a foreign object by [FromForeign], and has
// not been sliced since, that same object is returned. Otherwise, this
// returns a new [*Proxy] referring to this string's storage.
func (s String) Foreign() Foreign {
	if h := s.core.ForeignBuffer(); h != nil &&
		s.core.Window().Start() == 0 && s.core.Count() == h.Len() {
		return h
	}

	p := &Proxy{core: s.core}
	s.log("proxy", "%p", p)
	return p
}
