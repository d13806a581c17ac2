// Copyright 2020-2025 Buf Technologies, Inc.
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


package xunsafe

import (
	"fmt"
	"unsafe"
)

// Addr is the address of a T.
//
// It is an integer, so it does not keep the T alive; it is only good for
// comparing identities and printing.
type Addr[T any] uintptr

// AddrOf returns the address p points to.
func AddrOf[T any](p *T) Addr[T] {
	return Addr[T](uintptr(unsafe.Pointer(p)))
}

// AnyAddr returns the data word of an interface value.
//
// For pointer-shaped dynamic types (see [IsDirectAny]) this is the value
// itself; for everything else it is the address of a boxed copy.
func AnyAddr(v any) Addr[byte] {
	type iface struct {
		itab uintptr
		data *byte
	}
	return AddrOf((*iface)(unsafe.Pointer(&v)).data)
}

// Format implements [fmt.Formatter].
//
// %v prints the address the same way %p prints a pointer.
func (a Addr[T]) Format(state fmt.State, verb rune) {
	if verb == 'v' {
		fmt.Fprintf(state, "%#x", uintptr(a))
		return
	}
	fmt.Fprintf(state, fmt.FormatString(state, verb), uintptr(a))
}
