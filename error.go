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
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is returned, wrapped in a [*ParseError], when [Parse] is given
// bytes that are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// ParseError is returned by [Parse].
type ParseError struct {
	offset int
}

// Offset returns the offset of the first byte that is not part of a valid
// UTF-8 encoding.
func (e *ParseError) Offset() int {
	return e.offset
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *ParseError) Unwrap() error {
	return ErrInvalidUTF8
}

// Error implements [error].
func (e *ParseError) Error() string {
	return fmt.Sprintf("hyperstr: parse error at offset %d/%#x: %v", e.offset, e.offset, e.Unwrap())
}
