// This file is part of Specx.
//
// Specx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Specx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Specx.  If not, see <https://www.gnu.org/licenses/>.

// Package coords converts the number of tstates since the start of the frame
// into the position of the ULA beam.
//
// There are two coordinate systems. Display coordinates cover the 32x192
// column/line display area. Screen coordinates cover the 40x240 screen,
// which is the display plus the border. Beam positions outside the area of
// interest are clamped: a beam before the area is at the very start and a
// beam after the area is past the very end.
package coords

import (
	"fmt"

	"github.com/jetsetilly/specx/hardware/television/specification"
)

// Beam is the position of the ULA beam. The beam is at Col on Line, meaning
// that every column before Col on that line has been drawn. A Col value equal
// to the width of the area means the whole line has been drawn.
type Beam struct {
	Col  int
	Line int
}

func (b Beam) String() string {
	return fmt.Sprintf("Line: %03d  Col: %02d", b.Line, b.Col)
}

// Behind returns true if the column on the line has already been drawn by
// the beam.
func (b Beam) Behind(col int, line int) bool {
	return line < b.Line || (line == b.Line && col < b.Col)
}

// GreaterThan returns true if beam A is further through the frame than beam B.
func GreaterThan(A, B Beam) bool {
	return A.Line > B.Line || (A.Line == B.Line && A.Col > B.Col)
}

// beam converts the tstate to a position in an area with origin tstate zero.
func beam(spec specification.Spec, tstates int, zero int, cols int, lines int) Beam {
	d := tstates - zero
	if d < 0 {
		return Beam{}
	}

	line := d / spec.TStatesPerLine
	if line >= lines {
		return Beam{Col: cols, Line: lines - 1}
	}

	col := (d % spec.TStatesPerLine) / specification.TStatesPerCol
	if col > cols {
		col = cols
	}

	return Beam{Col: col, Line: line}
}

// DisplayBeam returns the beam position in display coordinates.
func DisplayBeam(spec specification.Spec, tstates int) Beam {
	return beam(spec, tstates, spec.TopLeftPixel, specification.DisplayCols, specification.DisplayLines)
}

// ScreenBeam returns the beam position in screen coordinates.
func ScreenBeam(spec specification.Spec, tstates int) Beam {
	return beam(spec, tstates, spec.ScreenLineStart(0), specification.ScreenCols, specification.ScreenLines)
}

// EndOfDisplay is the display beam position after the last line of the
// display has been drawn.
var EndOfDisplay = Beam{Col: specification.DisplayCols, Line: specification.DisplayLines - 1}

// EndOfScreen is the screen beam position after the last line of the screen
// has been drawn.
var EndOfScreen = Beam{Col: specification.ScreenCols, Line: specification.ScreenLines - 1}
