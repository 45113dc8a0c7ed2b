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

import (
	"github.com/jetsetilly/specx/hardware/scld"
	"github.com/jetsetilly/specx/hardware/television/coords"
	"github.com/jetsetilly/specx/hardware/television/specification"
)

// Dirty implements the memory.ScreenWriter interface. The offset is from the
// start of the screen bank. How the offset translates to chunks depends on
// the screen mode. A write can affect no chunks, one chunk, or the eight
// chunks covered by an attribute.
func (d *Display) Dirty(offset uint16) {
	switch d.dec.ScreenMode() {
	case scld.Standard:
		d.dirtyStandard(offset)
	case scld.AltDFile:
		if offset >= altOffset {
			d.dirtyStandard(offset - altOffset)
		}
	default:
		// in the extended colour and hires modes, the byte at the same
		// offset in both screen files affects the same chunk
		if offset < bitmapSize {
			d.dirty8(offset)
		} else if offset >= altOffset && offset < altOffset+bitmapSize {
			d.dirty8(offset - altOffset)
		}
	}
}

func (d *Display) dirtyStandard(offset uint16) {
	if offset < bitmapSize {
		d.dirty8(offset)
	} else if offset < attrOffset+attrSize {
		d.dirty64(offset - attrOffset)
	}
}

// dirty8 marks the chunk of a bitmap byte.
func (d *Display) dirty8(offset uint16) {
	d.MarkChunk(int(xtable[offset]), int(ytable[offset]))
}

// dirty64 marks the eight chunks of an attribute byte.
func (d *Display) dirty64(offset uint16) {
	x := int(xtable2[offset])
	y := int(ytable2[offset])
	for i := 0; i < 8; i++ {
		d.MarkChunk(x, y+i)
	}
}

// MarkChunk marks the chunk as maybe dirty. If the beam has already passed
// the chunk then the critical region is flushed first. Col and line are in
// display coordinates.
func (d *Display) MarkChunk(col int, line int) {
	beam := d.beam()
	if beam.Behind(col, line) {
		d.FlushThrough(beam)
	}
	d.maybeDirty[line] |= 1 << col
}

// FlushThrough moves the cursor to the beam position, drawing every maybe
// dirty chunk that it passes. The beam is in display coordinates. The cursor
// never moves backwards.
func (d *Display) FlushThrough(beam coords.Beam) {
	for coords.GreaterThan(beam, d.cursor) {
		line := d.cursor.Line

		end := specification.DisplayCols
		if line == beam.Line {
			end = beam.Col
		}

		// the bits of the columns between the cursor and the end
		mask := uint32(allDirty) >> (specification.DisplayCols - end) &^ ((1 << d.cursor.Col) - 1)
		bits := d.maybeDirty[line] & mask
		d.maybeDirty[line] &^= bits

		for col := d.cursor.Col; bits != 0; col++ {
			if bits&(1<<col) != 0 {
				bits &^= 1 << col
				d.drawChunk(col, line)
			}
		}

		if line < beam.Line {
			d.cursor = coords.Beam{Col: 0, Line: line + 1}
		} else {
			d.cursor.Col = end
		}
	}
}

// Cursor returns the position, in display coordinates, of the critical
// region cursor.
func (d *Display) Cursor() coords.Beam {
	return d.cursor
}

// MaybeDirty returns the maybe dirty bits of the display line.
func (d *Display) MaybeDirty(line int) uint32 {
	return d.maybeDirty[line]
}
