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

// the default number of frames between flash phase changes
const defaultFlashFrames = 16

type rect struct {
	x, y, w, h int
}

// EndFrame completes the frame. The rest of the display is drawn, the border
// is painted and the renderers are told of the changed areas of the screen.
func (d *Display) EndFrame() {
	d.FlushThrough(coords.EndOfDisplay)
	d.paintBorder()

	if d.redrawAll || (d.prefs != nil && d.prefs.RedrawAll.Get().(bool)) {
		d.paintArea(rect{w: specification.ScreenWidth, h: specification.ScreenHeight})
	} else {
		d.paintDirty()
	}

	for y := range d.isDirty {
		d.isDirty[y] = 0
	}
	d.redrawAll = false

	for _, r := range d.renderers {
		r.FrameEnd()
	}

	d.frameNum++
	d.updateFlash()

	d.cursor = coords.Beam{}
	d.border.reset()
}

func (d *Display) paintArea(r rect) {
	for _, rn := range d.renderers {
		rn.PaintArea(r.x, r.y, r.w, r.h)
	}
}

// paintDirty finds runs of dirty columns on each line. Identical runs on
// consecutive lines are merged into a single rectangle.
func (d *Display) paintDirty() {
	var open []rect

	for line := 0; line <= specification.ScreenLines; line++ {
		var next []rect

		if line < specification.ScreenLines {
			bits := d.isDirty[line]
			for col := 0; col < specification.ScreenCols; {
				if bits&(1<<col) == 0 {
					col++
					continue
				}
				start := col
				for col < specification.ScreenCols && bits&(1<<col) != 0 {
					col++
				}

				r := rect{x: start * 8, y: line, w: (col - start) * 8, h: 1}
				for i := range open {
					if open[i].x == r.x && open[i].w == r.w {
						r = open[i]
						r.h++
						open = append(open[:i], open[i+1:]...)
						break
					}
				}
				next = append(next, r)
			}
		}

		// rectangles that were not continued on this line are complete
		for _, r := range open {
			d.paintArea(r)
		}
		open = next
	}
}

// updateFlash counts frames and inverts the flash phase when required.
// Chunks with a flashing attribute are marked so that they are redrawn in
// the next frame.
func (d *Display) updateFlash() {
	n := defaultFlashFrames
	if d.prefs != nil {
		n = d.prefs.FlashFrames.Get().(int)
	}
	if n < 1 {
		n = 1
	}

	d.flashFrames++
	if d.flashFrames < n {
		return
	}
	d.flashFrames = 0
	d.flashPhase = !d.flashPhase

	switch d.dec.ScreenMode() {
	case scld.Standard, scld.AltDFile:
		base := uint16(0)
		if d.dec.ScreenMode() == scld.AltDFile {
			base = altOffset
		}
		for i := uint16(0); i < attrSize; i++ {
			if d.screen.ScreenByte(base+attrOffset+i)&0x80 == 0x80 {
				x := int(xtable2[i])
				y := int(ytable2[i])
				for j := 0; j < 8; j++ {
					d.maybeDirty[y+j] |= 1 << x
				}
			}
		}
	case scld.ExtColour, scld.ExtColAltD:
		for i := uint16(0); i < bitmapSize; i++ {
			if d.screen.ScreenByte(altOffset+i)&0x80 == 0x80 {
				d.maybeDirty[ytable[i]] |= 1 << xtable[i]
			}
		}
	}
}

// IsDirty returns the dirty bits of the screen line. Only meaningful between
// the flushing of a chunk and the end of the frame.
func (d *Display) IsDirty(line int) uint64 {
	return d.isDirty[line]
}
