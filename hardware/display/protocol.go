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

package display

// Renderer implementations display, or otherwise work with, the screen
// produced by the Display. For example the framebuffer.Frame and digest.Video
// types.
//
// Positions are in screen coordinates. Columns are eight lores pixels wide
// and lines are one pixel high. Column 4 of line 24 is the top-left of the
// display area.
//
// Colours are palette indexes (see specification.Palette). Bits that are set
// in the data are drawn with the ink colour and bits that are clear are drawn
// with the paper colour. The most significant bit is the leftmost pixel.
type Renderer interface {
	// PlotChunk8 draws eight lores pixels.
	PlotChunk8(col int, line int, data uint8, ink uint8, paper uint8)

	// PlotChunk16 draws sixteen hires pixels in the space of one column.
	PlotChunk16(col int, line int, data uint16, ink uint8, paper uint8)

	// PaintArea is called at the end of the frame once for every rectangle
	// that has changed since the previous frame. Measured in lores pixels.
	PaintArea(x int, y int, w int, h int)

	// FrameEnd is called after the last PaintArea() of the frame.
	FrameEnd()
}

// Clock implementations report the number of tstates since the start of the
// current frame.
type Clock interface {
	TStates() int
}

// ScreenMemory implementations provide access to the RAM bank the display is
// reading from. Offsets are from the start of the bank.
type ScreenMemory interface {
	ScreenByte(offset uint16) uint8
}
