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

package fontinfo

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/sfnt/gofont"
)

var sectionOrder = []string{
	"Names",
	"Version",
	"Metrics",
	"Style",
	"Glyph Count",
	"GSUB Features",
	"GPOS Features",
	"Supported Scripts",
}

func TestSectionOrder(t *testing.T) {
	font, err := gofont.TrueType(gofont.GoRegular)
	if err != nil {
		t.Fatal(err)
	}

	rep := ForFont(font)
	var titles []string
	for _, sec := range rep.Sections {
		titles = append(titles, sec.Title)
		if len(sec.Lines) == 0 {
			t.Errorf("section %q has no content", sec.Title)
		}
	}
	if d := cmp.Diff(sectionOrder, titles); d != "" {
		t.Errorf("wrong section order (-want +got):\n%s", d)
	}
}

func TestNames(t *testing.T) {
	font, err := gofont.TrueType(gofont.GoRegular)
	if err != nil {
		t.Fatal(err)
	}

	lines := ForFont(font).Sections[0].Lines
	if len(lines) != 4 {
		t.Fatalf("expected 4 name lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Family name:") {
		t.Errorf("unexpected first name line %q", lines[0])
	}
	for _, line := range lines {
		if !strings.Contains(line, "Go") {
			t.Errorf("name line %q does not mention the Go family", line)
		}
	}
}

func TestMetrics(t *testing.T) {
	font, err := gofont.TrueType(gofont.GoRegular)
	if err != nil {
		t.Fatal(err)
	}

	rep := ForFont(font)
	upem := rep.Sections[2].Lines[0]
	if !strings.HasPrefix(upem, "Units per em:") {
		t.Fatalf("unexpected metrics line %q", upem)
	}
	fields := strings.Fields(upem)
	if n, err := strconv.Atoi(fields[len(fields)-1]); err != nil || n <= 0 {
		t.Errorf("bad units per em in %q", upem)
	}

	count := rep.Sections[4].Lines[0]
	if n, err := strconv.Atoi(count); err != nil || n <= 0 {
		t.Errorf("bad glyph count %q", count)
	}
}

func TestOutlineFormats(t *testing.T) {
	glyfFont, err := gofont.TrueType(gofont.GoRegular)
	if err != nil {
		t.Fatal(err)
	}
	cffFont, err := gofont.OpenType(gofont.GoRegular)
	if err != nil {
		t.Fatal(err)
	}

	if got := outlineFormat(glyfFont); got != "TrueType (glyf)" {
		t.Errorf("glyf font reported as %q", got)
	}
	if got := outlineFormat(cffFont); got != "CFF" {
		t.Errorf("CFF font reported as %q", got)
	}

	// both flavors must yield a complete report
	for _, rep := range []*Report{ForFont(glyfFont), ForFont(cffFont)} {
		if len(rep.Sections) != len(sectionOrder) {
			t.Errorf("incomplete report: %d sections", len(rep.Sections))
		}
	}
}

func TestWriteDeterministic(t *testing.T) {
	var out [2][]byte
	for i := range out {
		font, err := gofont.TrueType(gofont.GoRegular)
		if err != nil {
			t.Fatal(err)
		}
		buf := &bytes.Buffer{}
		if err := ForFont(font).Write(buf); err != nil {
			t.Fatal(err)
		}
		out[i] = buf.Bytes()
	}
	if !bytes.Equal(out[0], out[1]) {
		t.Error("report output differs between runs")
	}
}

func TestWriteLayout(t *testing.T) {
	font, err := gofont.TrueType(gofont.GoRegular)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := ForFont(font).Write(buf); err != nil {
		t.Fatal(err)
	}

	pos := -1
	for _, title := range sectionOrder {
		idx := strings.Index(buf.String(), "\n"+title+":\n")
		if title == sectionOrder[0] {
			idx = strings.Index(buf.String(), title+":\n")
		}
		if idx < 0 {
			t.Fatalf("section %q missing from output", title)
		}
		if idx <= pos {
			t.Errorf("section %q out of order", title)
		}
		pos = idx
	}
}
