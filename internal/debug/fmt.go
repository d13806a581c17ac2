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


package debug

import (
	"fmt"
	"strings"
)

// Formatter delays printing until it is formatted with %v, so that building
// one for a log line that gets filtered out costs nothing.
type Formatter func(s fmt.State)

// Format implements [fmt.Formatter]. Verbs other than %v are rejected the
// same way package fmt rejects bad verbs.
func (f Formatter) Format(s fmt.State, verb rune) {
	if verb == 'v' {
		f(s)
		return
	}
	fmt.Fprintf(s, "%%!%c(%T)", verb, f)
}

// String implements [fmt.Stringer].
func (f Formatter) String() string { return fmt.Sprint(f) }

// Fprintf returns a [Formatter] that prints format with args.
func Fprintf(format string, args ...any) Formatter {
	return func(s fmt.State) { fmt.Fprintf(s, format, args...) }
}

// Dict returns a [Formatter] that prints name{k1: v1, k2: v2, ...}.
//
// kv alternates keys and values; entries with a nil value are left out. A nil
// name prints nothing before the brace.
func Dict(name any, kv ...any) Formatter {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("debug: odd number of arguments to Dict: %d", len(kv)))
	}

	return func(s fmt.State) {
		entries := make([]string, 0, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			if kv[i+1] != nil {
				entries = append(entries, fmt.Sprintf("%v: %v", kv[i], kv[i+1]))
			}
		}
		if name != nil {
			fmt.Fprint(s, name)
		}
		fmt.Fprintf(s, "{%s}", strings.Join(entries, ", "))
	}
}
