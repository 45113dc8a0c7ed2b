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
	"github.com/jetsetilly/specx/hardware/television/coords"
	"github.com/jetsetilly/specx/hardware/television/specification"
)

// BorderChange records the position of the beam, in screen coordinates, when
// the border changed to the colour.
type BorderChange struct {
	Col    int
	Line   int
	Colour uint8
}

type border struct {
	lores uint8
	hires uint8

	// the hires border is active
	isHires bool

	log []BorderChange
}

func (b *border) active() uint8 {
	if b.isHires {
		return b.hires
	}
	return b.lores
}

// reset the log so that it contains only the start sentinel
func (b *border) reset() {
	b.log = append(b.log[:0], BorderChange{Colour: b.active()})
}

// SetBorder sets the lores border colour, as written to the ULA port.
func (d *Display) SetBorder(colour uint8) {
	d.border.lores = colour & 0x07
	d.RecordBorderChange(d.border.active())
}

// SetHiresBorder implements the scld.Display interface.
func (d *Display) SetHiresBorder(hires bool, colour uint8) {
	d.border.isHires = hires
	d.border.hires = colour & 0x07
	d.RecordBorderChange(d.border.active())
}

// Border returns the colour of the active border.
func (d *Display) Border() uint8 {
	return d.border.active()
}

// LoresBorder returns the colour of the lores border, whether or not it is
// active.
func (d *Display) LoresBorder() uint8 {
	return d.border.lores
}

// RecordBorderChange adds an entry to the border log if the colour is
// different to the most recent entry. If the beam hasn't moved since the most
// recent entry then that entry is replaced.
func (d *Display) RecordBorderChange(colour uint8) {
	last := &d.border.log[len(d.border.log)-1]
	if last.Colour == colour {
		return
	}

	beam := coords.ScreenBeam(d.spec, d.clock.TStates())
	if last.Col == beam.Col && last.Line == beam.Line {
		last.Colour = colour
		return
	}

	d.border.log = append(d.border.log, BorderChange{Col: beam.Col, Line: beam.Line, Colour: colour})
}

// BorderLog returns a copy of the border changes for the current frame. The
// first entry is the start of frame sentinel.
func (d *Display) BorderLog() []BorderChange {
	l := make([]BorderChange, len(d.border.log))
	copy(l, d.border.log)
	return l
}

// paintBorder paints the border from the log. The end sentinel is added to
// the log before painting and each entry is painted up to the next entry.
func (d *Display) paintBorder() {
	d.border.log = append(d.border.log, BorderChange{
		Col:  coords.EndOfScreen.Col,
		Line: coords.EndOfScreen.Line,
	})

	for i := 0; i < len(d.border.log)-1; i++ {
		from := d.border.log[i]
		to := d.border.log[i+1]
		for line := from.Line; line <= to.Line; line++ {
			start := 0
			if line == from.Line {
				start = from.Col
			}
			end := specification.ScreenCols
			if line == to.Line {
				end = to.Col
			}
			d.paintBorderLine(line, start, end, from.Colour)
		}
	}
}

// paintBorderLine paints the border columns between start and end. Lines
// that pass through the display are painted only in the left and right parts.
func (d *Display) paintBorderLine(line int, start int, end int, colour uint8) {
	display := line >= specification.BorderLines && line < specification.BorderLines+specification.DisplayLines
	for col := start; col < end; col++ {
		if display && col >= specification.BorderCols && col < specification.BorderCols+specification.DisplayCols {
			continue
		}
		d.paintBorderChunk(col, line, colour)
	}
}

func (d *Display) paintBorderChunk(col int, line int, colour uint8) {
	if d.lastBorder[line][col] == colour {
		return
	}
	d.lastBorder[line][col] = colour
	for _, r := range d.renderers {
		r.PlotChunk8(col, line, 0x00, colour, colour)
	}
	d.isDirty[line] |= 1 << col
}
