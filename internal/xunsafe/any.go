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

import "reflect"

// IsDirectAny returns whether v's dynamic type is stored directly in an
// interface's data word, which makes [AnyAddr] a stable identity for it.
//
// Pointers, maps, channels and functions are direct, as are one-element
// arrays and one-field structs of direct types. This errs towards false for
// exotic layouts such as struct{ _ [0]int; p *int }.
func IsDirectAny(v any) bool {
	return v != nil && isDirect(reflect.TypeOf(v))
}

func isDirect(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		return true
	case reflect.Array:
		return t.Len() == 1 && isDirect(t.Elem())
	case reflect.Struct:
		return t.NumField() == 1 && isDirect(t.Field(0).Type)
	default:
		return false
	}
}
