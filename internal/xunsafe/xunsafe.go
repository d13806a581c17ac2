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


// Package xunsafe collects the unsafe operations that string storage needs:
// reinterpreting code units as Go strings and back, reading whole words out
// of text, and taking addresses for identity checks.
package xunsafe

import (
	"sync"
	"unsafe"
)

// NoCopy makes go vet complain about structs that contain it being copied.
//
// It does so by implementing [sync.Locker].
type NoCopy [0]sync.Mutex

// Word is an unsigned integer that can be loaded straight out of text.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// LoadWord reads a W starting n bytes past p. The load need not be aligned.
func LoadWord[W Word](p *byte, n int) W {
	return *(*W)(unsafe.Add(unsafe.Pointer(p), n))
}
