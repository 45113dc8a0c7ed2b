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

// Package specification contains the timing definitions of the machines
// supported by the emulation and the geometry of the screen they produce.
package specification

// Screen geometry. Columns are eight pixels wide. The screen is the display
// area surrounded by the border.
const (
	DisplayCols  = 32
	DisplayLines = 192

	BorderCols  = 4
	BorderLines = 24

	ScreenCols  = DisplayCols + BorderCols*2
	ScreenLines = DisplayLines + BorderLines*2

	// width and height of the screen in lores pixels
	ScreenWidth  = ScreenCols * 8
	ScreenHeight = ScreenLines
)

// TStatesPerCol is the number of tstates the ULA takes to draw one column.
const TStatesPerCol = 4

// Spec defines the timings of a machine. All values are in tstates.
type Spec struct {
	ID string

	TStatesPerLine  int
	LinesPerFrame   int
	TStatesPerFrame int

	// the tstate at which the top-left pixel of the display is drawn
	TopLeftPixel int

	// how long the interrupt line is held after the start of the frame
	InterruptLength int

	FramesPerSecond float32
}

// ScreenLineStart returns the tstate at which the leftmost border column of
// the screen line is drawn. The line is in screen coordinates and so line 24
// is the first line of the display.
func (spec Spec) ScreenLineStart(line int) int {
	return spec.TopLeftPixel + (line-BorderLines)*spec.TStatesPerLine - BorderCols*TStatesPerCol
}

// Spec48 is the specification for the 48K Spectrum.
var Spec48 = Spec{
	ID:              "48K",
	TStatesPerLine:  224,
	LinesPerFrame:   312,
	TStatesPerFrame: 224 * 312,
	TopLeftPixel:    14336,
	InterruptLength: 32,
	FramesPerSecond: 50.08,
}

// Spec128 is the specification for the 128K Spectrum.
var Spec128 = Spec{
	ID:              "128K",
	TStatesPerLine:  228,
	LinesPerFrame:   311,
	TStatesPerFrame: 228 * 311,
	TopLeftPixel:    14362,
	InterruptLength: 36,
	FramesPerSecond: 50.02,
}

// SpecTimex is the specification for the 50Hz Timex machines (TC2048 and
// TC2068) and the SE.
var SpecTimex = Spec{
	ID:              "Timex",
	TStatesPerLine:  224,
	LinesPerFrame:   312,
	TStatesPerFrame: 224 * 312,
	TopLeftPixel:    14321,
	InterruptLength: 32,
	FramesPerSecond: 50.08,
}

// SpecTS2068 is the specification for the 60Hz TS2068.
var SpecTS2068 = Spec{
	ID:              "TS2068",
	TStatesPerLine:  228,
	LinesPerFrame:   262,
	TStatesPerFrame: 228 * 262,
	TopLeftPixel:    9106,
	InterruptLength: 32,
	FramesPerSecond: 59.94,
}
