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

import "unsafe"

// CodeUnit is an element of string storage: a byte of ASCII or Latin-1 text,
// or a UTF-16 code unit.
type CodeUnit interface {
	~byte | ~uint16
}

// SliceToString reinterprets a run of code units as a Go string made of the
// same bytes, without copying.
//
// The slice must never be written to again.
func SliceToString[E CodeUnit](s []E) string {
	if len(s) == 0 {
		return ""
	}
	data := (*byte)(unsafe.Pointer(unsafe.SliceData(s)))
	return unsafe.String(data, len(s)*int(unsafe.Sizeof(s[0])))
}

// StringToSlice reinterprets the bytes of s as code units, without copying.
// A trailing partial code unit is dropped.
//
// The returned slice must never be written to.
func StringToSlice[E CodeUnit](s string) []E {
	var z E
	if len(s) < int(unsafe.Sizeof(z)) {
		return nil
	}
	data := (*E)(unsafe.Pointer(unsafe.StringData(s)))
	return unsafe.Slice(data, len(s)/int(unsafe.Sizeof(z)))
}
