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

// Package fontinfo summarizes TrueType and OpenType fonts as plain text.
//
// All binary font-table parsing is done by seehuhn.de/go/sfnt.  This
// package only gathers the decoded values into an ordered report,
// attaches human-readable descriptions to OpenType feature and script
// tags, and writes the result to an io.Writer:
//
//	font, err := sfnt.Read(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = fontinfo.ForFont(font).Write(os.Stdout)
//
// The report always contains the same sections in the same order, so
// that repeated runs over an unchanged font give byte-identical output.
package fontinfo
