// seehuhn.de/go/fontinfo - print information about TrueType and OpenType fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Fontinfo prints a human-readable summary of a font file.
//
// Usage:
//
//	fontinfo <font-file>
//
// The report lists the font's names, version, metrics, style, glyph
// count, GSUB/GPOS features and supported scripts.  The exit status is
// non-zero if the file cannot be read or is not a valid font.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/fontinfo"
)

func main() {
	flag.Usage = func() {
		name := filepath.Base(os.Args[0])
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s <font-file>\n", name)
		fmt.Fprintf(out, "Example: %s /path/to/font.ttf\n", name)
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	err := show(flag.Arg(0), os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fontinfo:", err)
		os.Exit(1)
	}
}

// show reads one font file and writes the report to w.  Nothing is
// written unless the font decodes successfully.
func show(fname string, w io.Writer) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}

	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	_, err = fmt.Fprintf(w, "File: %s\n\n", fname)
	if err != nil {
		return err
	}
	return fontinfo.ForFont(font).Write(w)
}
