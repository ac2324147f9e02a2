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
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/opentype/gtab"
)

// A Section is one labeled block of the report.
type Section struct {
	Title string
	Lines []string
}

// A Report is an ordered collection of sections.  Reports are built by
// ForFont and are not modified afterwards.
type Report struct {
	Sections []Section
}

// ForFont assembles the report for a decoded font.  The section order
// is fixed: Names, Version, Metrics, Style, Glyph Count, GSUB Features,
// GPOS Features, Supported Scripts.
func ForFont(font *sfnt.Font) *Report {
	return &Report{
		Sections: []Section{
			namesSection(font),
			versionSection(font),
			metricsSection(font),
			styleSection(font),
			glyphSection(font),
			featureSection("GSUB Features", font.Gsub, "No GSUB features found"),
			featureSection("GPOS Features", font.Gpos, "No GPOS features found"),
			scriptSection(font),
		},
	}
}

// Write serializes the report as plain text.
func (r *Report) Write(w io.Writer) error {
	for i, sec := range r.Sections {
		if i > 0 {
			_, err := fmt.Fprintln(w)
			if err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s:\n", sec.Title)
		if err != nil {
			return err
		}
		for _, line := range sec.Lines {
			_, err = fmt.Fprintf(w, "  %s\n", line)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func namesSection(font *sfnt.Font) Section {
	return Section{
		Title: "Names",
		Lines: []string{
			nameLine("Family name:", font.FamilyName),
			nameLine("Subfamily:", font.Subfamily()),
			nameLine("Full name:", font.FullName()),
			nameLine("PostScript name:", font.PostScriptName()),
		},
	}
}

// nameLine renders one entry of the Names section.  Missing name
// records are a valid state and show as "N/A".
func nameLine(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = "N/A"
	}
	return fmt.Sprintf("%-17s %s", label, value)
}

func versionSection(font *sfnt.Font) Section {
	return Section{
		Title: "Version",
		Lines: []string{font.Version.String()},
	}
}

func metricsSection(font *sfnt.Font) Section {
	return Section{
		Title: "Metrics",
		Lines: []string{
			fmt.Sprintf("%-14s %d", "Units per em:", font.UnitsPerEm),
			fmt.Sprintf("%-14s %d", "Ascender:", font.Ascent),
			fmt.Sprintf("%-14s %d", "Descender:", font.Descent),
			fmt.Sprintf("%-14s %d", "Line gap:", font.LineGap),
			fmt.Sprintf("%-14s %d", "Cap height:", font.CapHeight),
			fmt.Sprintf("%-14s %d", "x-height:", font.XHeight),
		},
	}
}

func styleSection(font *sfnt.Font) Section {
	return Section{
		Title: "Style",
		Lines: []string{
			fmt.Sprintf("%-14s %d (%s)", "Weight class:", font.Weight, font.Weight),
			fmt.Sprintf("%-14s %d (%s)", "Width class:", font.Width, font.Width),
			fmt.Sprintf("%-14s %s", "Style flags:", styleFlags(font)),
			fmt.Sprintf("%-14s %s", "Outlines:", outlineFormat(font)),
			fmt.Sprintf("%-14s %t", "Monospaced:", font.IsFixedPitch()),
		},
	}
}

func styleFlags(font *sfnt.Font) string {
	var flags []string
	if font.IsRegular {
		flags = append(flags, "regular")
	}
	if font.IsBold {
		flags = append(flags, "bold")
	}
	if font.IsItalic {
		flags = append(flags, "italic")
	}
	if font.IsOblique {
		flags = append(flags, "oblique")
	}
	if font.IsSerif {
		flags = append(flags, "serif")
	}
	if font.IsScript {
		flags = append(flags, "script")
	}
	if len(flags) == 0 {
		return "none"
	}
	return strings.Join(flags, ", ")
}

func outlineFormat(font *sfnt.Font) string {
	switch {
	case font.IsGlyf():
		return "TrueType (glyf)"
	case font.IsCFF():
		return "CFF"
	default:
		return "unknown"
	}
}

func glyphSection(font *sfnt.Font) Section {
	return Section{
		Title: "Glyph Count",
		Lines: []string{strconv.Itoa(font.NumGlyphs())},
	}
}

// featureSection lists the feature tags of one layout table together
// with their descriptions.  Tags are sorted for display; FeatureTags
// keeps the font's own order for callers who need it.
func featureSection(title string, info *gtab.Info, empty string) Section {
	tags := FeatureTags(info)
	if len(tags) == 0 {
		return Section{Title: title, Lines: []string{empty}}
	}
	sort.Strings(tags)

	lines := make([]string, len(tags))
	for i, tag := range tags {
		lines[i] = fmt.Sprintf("%s  %s", tag, DescribeFeature(tag))
	}
	return Section{Title: title, Lines: lines}
}

func scriptSection(font *sfnt.Font) Section {
	tags := ScriptTags(font.Gsub, font.Gpos)
	if len(tags) == 0 {
		return Section{
			Title: "Supported Scripts",
			Lines: []string{"No script information found"},
		}
	}

	lines := make([]string, len(tags))
	for i, tag := range tags {
		lines[i] = fmt.Sprintf("%s  %s", tag, DescribeScript(tag))
	}
	return Section{Title: "Supported Scripts", Lines: lines}
}
