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

// strdump prints every view of a string, along with how it is stored and how
// indices translate between the views.
//
// Usage:
//
//	strdump [-foreign] [-wide] [-slice a:b] [-q] [-views list] text...
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"buf.build/go/hyperstr"
	"buf.build/go/hyperstr/internal/foreign"
)

var (
	useForeign = flag.Bool("foreign", false, "wrap the text in a foreign string object")
	wide       = flag.Bool("wide", false, "store ASCII text as UTF-16")
	slice      = flag.String("slice", "", "dump only clusters a:b of the text")
	unquote    = flag.Bool("q", false, "interpret arguments as Go string literals, without the quotes")
	views      = flag.String("views", "utf8,utf16,scalars,graphemes,map", "comma-separated list of views to dump")
	color      = flag.String("color", "auto", "whether to colorize output: always, never or auto")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: strdump [flags] text...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	d := &dumper{
		out:     os.Stdout,
		color:   *color == "always" || (*color == "auto" && term.IsTerminal(int(os.Stdout.Fd()))),
		foreign: *useForeign,
		wide:    *wide,
		unquote: *unquote,
		slice:   *slice,
	}
	if err := d.check(); err != nil {
		fmt.Fprintf(os.Stderr, "strdump: %v\n", err)
		os.Exit(2)
	}
	for _, k := range strings.Split(*views, ",") {
		d.views = append(d.views, strings.TrimSpace(k))
	}

	fmt.Fprintln(d.out, d.dim("# "+shellescape.QuoteCommand(os.Args)))
	for _, arg := range flag.Args() {
		if err := d.dump(arg); err != nil {
			fmt.Fprintf(os.Stderr, "strdump: %v\n", err)
			os.Exit(1)
		}
	}
}

type dumper struct {
	out   io.Writer
	color bool
	views []string

	foreign, wide, unquote bool
	slice                  string
}

// check rejects flag combinations that would silently do nothing.
func (d *dumper) check() error {
	if d.foreign && d.wide {
		return errors.New("-wide cannot be combined with -foreign: foreign strings choose their own storage")
	}
	return nil
}

func (d *dumper) dump(arg string) error {
	if err := d.check(); err != nil {
		return err
	}

	text := arg
	if d.unquote {
		var err error
		text, err = strconv.Unquote(`"` + arg + `"`)
		if err != nil {
			return fmt.Errorf("invalid literal %q: %w", arg, err)
		}
	}

	var opts []hyperstr.Option
	if d.wide {
		opts = append(opts, hyperstr.WithWideStorage(true))
	}

	var s hyperstr.String
	if d.foreign {
		f := foreign.New(text)
		fmt.Fprintln(d.out, "foreign:", hyperstr.ReprForeign(f))
		s = hyperstr.FromForeign(f, opts...)
	} else {
		s = hyperstr.New(text, opts...)
	}

	if d.slice != "" {
		var err error
		if s, err = sliceClusters(s, d.slice); err != nil {
			return err
		}
	}

	fmt.Fprintln(d.out, "repr:", hyperstr.Repr(s))
	for _, view := range d.views {
		switch view {
		case "utf8":
			var b []string
			for _, x := range s.UTF8().All() {
				b = append(b, fmt.Sprintf("%02x", x))
			}
			d.row("utf8", b)
		case "utf16":
			var u []string
			for _, x := range s.UTF16().All() {
				u = append(u, fmt.Sprintf("%04x", x))
			}
			d.row("utf16", u)
		case "scalars":
			var r []string
			for _, x := range s.Scalars().All() {
				r = append(r, fmt.Sprintf("%U", x))
			}
			d.row("scalars", r)
		case "graphemes":
			d.graphemes(s)
		case "map":
			d.indexMap(s)
		default:
			return fmt.Errorf("unknown view %q", view)
		}
	}
	return nil
}

// row prints one view as a hex sequence.
func (d *dumper) row(name string, elems []string) {
	fmt.Fprintf(d.out, "%-9s[%s]\n", name+":", strings.Join(elems, " "))
}

// graphemes prints a table of clusters, with the UTF-8 bytes of each.
func (d *dumper) graphemes(s hyperstr.String) {
	fmt.Fprintln(d.out, "graphemes:")

	u8 := s.UTF8()
	width := 1
	for _, c := range s.All() {
		width = max(width, runewidth.StringWidth(c.String()))
	}

	for i, c := range s.All() {
		var b []string
		for j := u8.FromIndex(i); j != u8.FromIndex(s.Next(i)); j = u8.Next(j) {
			b = append(b, fmt.Sprintf("%02x", u8.At(j)))
		}

		text := c.String()
		pad := strings.Repeat(" ", width-runewidth.StringWidth(text))
		fmt.Fprintf(d.out, "  %4d  %s%s  [%s]\n", s.UTF16().FromIndex(i).Offset(), text, pad, strings.Join(b, " "))
	}
}

// indexMap prints where each UTF-16 index lands in the UTF-8 view.
func (d *dumper) indexMap(s hyperstr.String) {
	fmt.Fprintln(d.out, "utf16 -> utf8:")

	u8 := s.UTF8()
	for i, u := range s.UTF16().All() {
		j, ok := u8.FromUTF16(i)
		if !ok {
			fmt.Fprintf(d.out, "  %4d  %04x  %s\n", i.Offset(), u, d.red("invalid"))
			continue
		}
		fmt.Fprintf(d.out, "  %4d  %04x  %v\n", i.Offset(), u, j)
	}
}

func (d *dumper) red(s string) string {
	if !d.color {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}

func (d *dumper) dim(s string) string {
	if !d.color {
		return s
	}
	return "\x1b[2m" + s + "\x1b[0m"
}

// sliceClusters parses a slice expression a:b, where either bound may be
// omitted, and applies it to s in units of grapheme clusters.
func sliceClusters(s hyperstr.String, expr string) (hyperstr.String, error) {
	lo, hi, ok := strings.Cut(expr, ":")
	if !ok {
		return s, fmt.Errorf("invalid slice %q: missing colon", expr)
	}

	n := s.Graphemes().Len()
	bound := func(x string, def int) (int, error) {
		if x == "" {
			return def, nil
		}
		v, err := strconv.Atoi(x)
		if err != nil || v < 0 || v > n {
			return 0, fmt.Errorf("invalid slice bound %q for %d clusters", x, n)
		}
		return v, nil
	}

	a, err := bound(lo, 0)
	if err != nil {
		return s, err
	}
	b, err := bound(hi, n)
	if err != nil {
		return s, err
	}
	if a > b {
		return s, fmt.Errorf("invalid slice %q: %d > %d", expr, a, b)
	}

	i := s.StartIndex()
	for range a {
		i = s.Next(i)
	}
	j := i
	for range b - a {
		j = s.Next(j)
	}
	return s.Slice(i, j), nil
}
