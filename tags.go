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

import "fmt"

// DescribeFeature returns a human-readable description for an OpenType
// feature tag, e.g. "Kerning" for "kern".  The numbered families
// "ss01"-"ss20" and "cv01"-"cv99" are recognized without individual
// table entries.  Unrecognized tags give "Unknown feature"; the
// function never fails.
func DescribeFeature(tag string) string {
	if name, ok := featureNames[tag]; ok {
		return name
	}
	if n, ok := numberedTag(tag, "ss"); ok && n >= 1 && n <= 20 {
		return fmt.Sprintf("Stylistic Set %d", n)
	}
	if n, ok := numberedTag(tag, "cv"); ok && n >= 1 && n <= 99 {
		return fmt.Sprintf("Character Variant %d", n)
	}
	return "Unknown feature"
}

// DescribeScript returns a human-readable name for a four-letter
// OpenType script tag, e.g. "Latin" for "latn".  Unrecognized tags give
// "Unknown script"; the function never fails.
func DescribeScript(tag string) string {
	if name, ok := scriptNames[tag]; ok {
		return name
	}
	return "Unknown script"
}

// numberedTag extracts the number from tags like "ss07" or "cv42".
func numberedTag(tag, prefix string) (int, bool) {
	if len(tag) != 4 || tag[:2] != prefix {
		return 0, false
	}
	hi, lo := tag[2], tag[3]
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}

// featureNames maps registered OpenType feature tags to their names.
// https://learn.microsoft.com/en-us/typography/opentype/spec/featuretags
var featureNames = map[string]string{
	"aalt": "Access All Alternates",
	"abvf": "Above-base Forms",
	"abvm": "Above-base Mark Positioning",
	"abvs": "Above-base Substitutions",
	"afrc": "Alternative Fractions",
	"akhn": "Akhand",
	"blwf": "Below-base Forms",
	"blwm": "Below-base Mark Positioning",
	"blws": "Below-base Substitutions",
	"c2pc": "Petite Capitals From Capitals",
	"c2sc": "Small Capitals From Capitals",
	"calt": "Contextual Alternates",
	"case": "Case-Sensitive Forms",
	"ccmp": "Glyph Composition/Decomposition",
	"cfar": "Conjunct Form After Ro",
	"cjct": "Conjunct Forms",
	"clig": "Contextual Ligatures",
	"cpct": "Centered CJK Punctuation",
	"cpsp": "Capital Spacing",
	"cswh": "Contextual Swash",
	"curs": "Cursive Positioning",
	"dist": "Distances",
	"dlig": "Discretionary Ligatures",
	"dnom": "Denominators",
	"dtls": "Dotless Forms",
	"expt": "Expert Forms",
	"falt": "Final Glyph on Line Alternates",
	"fin2": "Terminal Forms #2",
	"fin3": "Terminal Forms #3",
	"fina": "Terminal Forms",
	"flac": "Flattened Accent Forms",
	"frac": "Fractions",
	"fwid": "Full Widths",
	"half": "Half Forms",
	"haln": "Halant Forms",
	"halt": "Alternate Half Widths",
	"hist": "Historical Forms",
	"hkna": "Horizontal Kana Alternates",
	"hlig": "Historical Ligatures",
	"hngl": "Hangul",
	"hojo": "Hojo Kanji Forms",
	"hwid": "Half Widths",
	"init": "Initial Forms",
	"isol": "Isolated Forms",
	"ital": "Italics",
	"jalt": "Justification Alternates",
	"jp04": "JIS2004 Forms",
	"jp78": "JIS78 Forms",
	"jp83": "JIS83 Forms",
	"jp90": "JIS90 Forms",
	"kern": "Kerning",
	"lfbd": "Left Bounds",
	"liga": "Standard Ligatures",
	"ljmo": "Leading Jamo Forms",
	"lnum": "Lining Figures",
	"locl": "Localized Forms",
	"ltra": "Left-to-right Alternates",
	"ltrm": "Left-to-right Mirrored Forms",
	"mark": "Mark Positioning",
	"med2": "Medial Forms #2",
	"medi": "Medial Forms",
	"mgrk": "Mathematical Greek",
	"mkmk": "Mark to Mark Positioning",
	"mset": "Mark Positioning via Substitution",
	"nalt": "Alternate Annotation Forms",
	"nlck": "NLC Kanji Forms",
	"nukt": "Nukta Forms",
	"numr": "Numerators",
	"onum": "Oldstyle Figures",
	"opbd": "Optical Bounds",
	"ordn": "Ordinals",
	"ornm": "Ornaments",
	"palt": "Proportional Alternate Widths",
	"pcap": "Petite Capitals",
	"pkna": "Proportional Kana",
	"pnum": "Proportional Figures",
	"pref": "Pre-Base Forms",
	"pres": "Pre-base Substitutions",
	"pstf": "Post-base Forms",
	"psts": "Post-base Substitutions",
	"pwid": "Proportional Widths",
	"qwid": "Quarter Widths",
	"rand": "Randomize",
	"rclt": "Required Contextual Alternates",
	"rkrf": "Rakar Forms",
	"rlig": "Required Ligatures",
	"rphf": "Reph Forms",
	"rtbd": "Right Bounds",
	"rtla": "Right-to-left Alternates",
	"rtlm": "Right-to-left Mirrored Forms",
	"ruby": "Ruby Notation Forms",
	"rvrn": "Required Variation Alternates",
	"salt": "Stylistic Alternates",
	"sinf": "Scientific Inferiors",
	"size": "Optical Size",
	"smcp": "Small Capitals",
	"smpl": "Simplified Forms",
	"ssty": "Math Script Style Alternates",
	"stch": "Stretching Glyph Decomposition",
	"subs": "Subscript",
	"sups": "Superscript",
	"swsh": "Swash",
	"titl": "Titling",
	"tjmo": "Trailing Jamo Forms",
	"tnam": "Traditional Name Forms",
	"tnum": "Tabular Figures",
	"trad": "Traditional Forms",
	"twid": "Third Widths",
	"unic": "Unicase",
	"valt": "Alternate Vertical Metrics",
	"vatu": "Vattu Variants",
	"vert": "Vertical Writing",
	"vhal": "Alternate Vertical Half Metrics",
	"vjmo": "Vowel Jamo Forms",
	"vkna": "Vertical Kana Alternates",
	"vkrn": "Vertical Kerning",
	"vpal": "Proportional Alternate Vertical Metrics",
	"vrt2": "Vertical Alternates and Rotation",
	"vrtr": "Vertical Alternates for Rotation",
	"zero": "Slashed Zero",
}

// scriptNames maps OpenType script tags to script names.  The tags
// coincide with lower-cased ISO 15924 codes, except for the reserved
// default tag "DFLT".
// https://learn.microsoft.com/en-us/typography/opentype/spec/scripttags
var scriptNames = map[string]string{
	"DFLT": "Default",
	"arab": "Arabic",
	"armn": "Armenian",
	"beng": "Bengali",
	"bopo": "Bopomofo",
	"cans": "Canadian Syllabics",
	"cher": "Cherokee",
	"copt": "Coptic",
	"cyrl": "Cyrillic",
	"deva": "Devanagari",
	"dsrt": "Deseret",
	"ethi": "Ethiopic",
	"geor": "Georgian",
	"goth": "Gothic",
	"grek": "Greek",
	"gujr": "Gujarati",
	"guru": "Gurmukhi",
	"hang": "Hangul",
	"hani": "CJK Ideographic",
	"hebr": "Hebrew",
	"hira": "Hiragana",
	"ital": "Old Italic",
	"kana": "Katakana",
	"khmr": "Khmer",
	"knda": "Kannada",
	"laoo": "Lao",
	"latn": "Latin",
	"mlym": "Malayalam",
	"mong": "Mongolian",
	"mymr": "Myanmar",
	"ogam": "Ogham",
	"orya": "Odia",
	"runr": "Runic",
	"sinh": "Sinhala",
	"syrc": "Syriac",
	"taml": "Tamil",
	"telu": "Telugu",
	"thaa": "Thaana",
	"thai": "Thai",
	"tibt": "Tibetan",
	"yiii": "Yi",
}
