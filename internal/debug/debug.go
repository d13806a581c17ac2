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


//go:build debug

// Package debug includes debugging helpers that only do anything when
// hyperstr is built with the debug tag.
package debug

import (
	"flag"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/timandy/routine"
)

// Enabled is true if hyperstr is being built with the debug tag, which
// enables various debugging features.
const Enabled = true

var (
	filter   *regexp.Regexp
	toStderr = flag.Bool("hyperstr.debug.stderr", false, "write debug logs to stderr even while testing")

	// Where each goroutine's logs go, if it is running a test.
	sinks = routine.NewThreadLocal[testing.TB]()
)

func init() {
	flag.Func("hyperstr.debug.filter", "only print debug logs matching this regexp", func(s string) (err error) {
		filter, err = regexp.Compile(s)
		return err
	})
}

// Log prints a line of debugging information, tagged with where it came from
// and which goroutine printed it.
//
// context, if not empty, is a format string and its arguments, which are
// printed alongside the goroutine; it identifies the object that a sequence of
// operations applies to.
func Log(context []any, operation string, format string, args ...any) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [g%04d", caller(), routine.Goid())
	if len(context) > 0 {
		b.WriteString(", ")
		fmt.Fprintf(&b, context[0].(string), context[1:]...)
	}
	fmt.Fprintf(&b, "] %s: ", operation)
	fmt.Fprintf(&b, format, args...)

	line := b.String()
	if filter != nil && !filter.MatchString(line) {
		return
	}
	if t := sinks.Get(); t != nil && !*toStderr {
		t.Log(line)
		return
	}
	fmt.Fprintln(os.Stderr, line)
}

// caller returns package/file:line for whoever called [Log], looking through
// the log helper methods that types define to add their own context.
func caller() string {
	var pcs [8]uintptr
	frames := runtime.CallersFrames(pcs[:runtime.Callers(3, pcs[:])])
	for {
		f, more := frames.Next()
		fn := f.Function[strings.LastIndexByte(f.Function, '.')+1:]
		if fn == "log" && more {
			continue
		}

		pkg := path.Base(f.Function)
		if i := strings.IndexByte(pkg, '.'); i >= 0 {
			pkg = pkg[:i]
		}
		return fmt.Sprintf("%s/%s:%d", pkg, filepath.Base(f.File), f.Line)
	}
}

// Assert panics if cond is false, but only in debug mode.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("hyperstr: internal assertion failed: "+format, args...))
	}
}

// WithTesting routes debug logs on the current goroutine to t until the
// returned function is called.
//
// Use like this:
//
//	defer debug.WithTesting(t)()
func WithTesting(t testing.TB) func() {
	sinks.Set(t)
	return sinks.Remove
}
