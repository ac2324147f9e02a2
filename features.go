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
	"sort"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/text/language"

	"seehuhn.de/go/sfnt/opentype/gtab"
)

// FeatureTags returns the feature tags of a "GSUB" or "GPOS" table.
// Duplicates are removed; the first occurrence in the font's feature
// list determines the order.  A nil table gives no tags.
func FeatureTags(info *gtab.Info) []string {
	if info == nil {
		return nil
	}

	seen := make(map[string]bool)
	var tags []string
	for _, feature := range info.FeatureList {
		if feature == nil || seen[feature.Tag] {
			continue
		}
		seen[feature.Tag] = true
		tags = append(tags, feature.Tag)
	}
	return tags
}

// ScriptTags returns the script tags declared in the given "GSUB" and
// "GPOS" tables, deduplicated and sorted alphabetically.  Nil tables
// are ignored.
func ScriptTags(tables ...*gtab.Info) []string {
	seen := make(map[string]bool)
	for _, info := range tables {
		if info == nil {
			continue
		}
		for loc := range info.ScriptList {
			seen[scriptTag(loc)] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}

	tags := maps.Keys(seen)
	sort.Strings(tags)
	return tags
}

// scriptTag recovers the OpenType script tag from a BCP 47 script list
// key.  Keys without an identifiable script collapse to the reserved
// default tag "DFLT".  Scripts merely guessed from the language
// (confidence Low or less, e.g. for "und") do not count as identified.
func scriptTag(loc language.Tag) string {
	script, conf := loc.Script()
	code := script.String()
	if conf <= language.Low || code == "Zzzz" || code == "Zyyy" {
		return "DFLT"
	}
	return strings.ToLower(code)
}
