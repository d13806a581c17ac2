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
	"fmt"
	"strings"

	"buf.build/go/hyperstr/internal/core"
)

// Repr returns a description of how s is stored, followed by its text.
//
// This is intended for diagnostics and for testing that storage is shared
// rather than copied. It looks like one of
//
//	String(Contiguous(owner: null, count: 6)) = "foobar"
//	String(Contiguous(owner: .Native@0xc000012345[0...7], capacity = 8)) = "ABCDEFG"
//	String(Contiguous(owner: .Foreign@0xc000012345, count: 6)) = "..."
//	String(Opaque(buffer: .Foreign@0xc000012345[3...6])) = "bar"
//
// Native owners are buffers allocated by hyperstr; storage borrowed from a Go
// string has no owner. Foreign owners are [Foreign] string objects.
func Repr(s String) string {
	return fmt.Sprintf("String(%v) = \"%s\"", s.core, s)
}

// ReprForeign returns the type and address of a foreign string object,
// followed by its text.
//
// Objects that are not pointer-shaped have no address, and print as just
// their type.
func ReprForeign(f Foreign) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", f), "*")
	return fmt.Sprintf("%s%s = \"%s\"", name, core.Identity(f), FromForeign(f))
}
