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
	"github.com/jetsetilly/specx/hardware/preferences"
	"github.com/jetsetilly/specx/hardware/scld"
	"github.com/jetsetilly/specx/hardware/television/coords"
	"github.com/jetsetilly/specx/hardware/television/specification"
	"github.com/jetsetilly/specx/logger"
)

// value of a lastDrawn entry that matches no rendered chunk
const invalidChunk = 0x80000000

// value of a lastBorder entry that matches no colour
const invalidBorder = 0xff

// the maybeDirty value for a display line with every chunk set
const allDirty = (1 << specification.DisplayCols) - 1

// Display is the dirty region tracker and frame compositor.
type Display struct {
	perm  logger.Permission
	prefs *preferences.Preferences

	spec   specification.Spec
	clock  Clock
	screen ScreenMemory

	renderers []Renderer

	dec scld.DEC

	// one bit per column of each display line
	maybeDirty [specification.DisplayLines]uint32

	// one bit per column of each screen line. border columns included
	isDirty [specification.ScreenLines]uint64

	// repaint the whole screen at the end of the frame
	redrawAll bool

	// the rendered value of each chunk as it was last plotted
	lastDrawn [specification.DisplayLines][specification.DisplayCols]uint32

	// the position, in display coordinates, up to which maybe dirty chunks
	// have been flushed
	cursor coords.Beam

	flashFrames int
	flashPhase  bool

	border     border
	lastBorder [specification.ScreenLines][specification.ScreenCols]uint8

	frameNum int
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(perm logger.Permission, prefs *preferences.Preferences, spec specification.Spec, clock Clock, screen ScreenMemory) *Display {
	d := &Display{
		perm:   perm,
		prefs:  prefs,
		spec:   spec,
		clock:  clock,
		screen: screen,
	}
	d.Reset()
	return d
}

// AddRenderer registers an (additional) implementation of Renderer.
func (d *Display) AddRenderer(r Renderer) {
	d.renderers = append(d.renderers, r)
}

// RemoveRenderer removes a previously added Renderer.
func (d *Display) RemoveRenderer(r Renderer) {
	for i := range d.renderers {
		if d.renderers[i] == r {
			d.renderers = append(d.renderers[:i], d.renderers[i+1:]...)
			return
		}
	}
}

// Reset the display to the power-on state. The next frame will be drawn in
// its entirety.
func (d *Display) Reset() {
	d.dec = 0
	d.flashPhase = false
	d.flashFrames = 0
	d.frameNum = 0
	d.cursor = coords.Beam{}
	d.border = border{}
	d.border.reset()
	for y := range d.lastBorder {
		for x := range d.lastBorder[y] {
			d.lastBorder[y][x] = invalidBorder
		}
	}
	for y := range d.isDirty {
		d.isDirty[y] = 0
	}
	d.RefreshAll()
}

// Plumb restores the flash state. The cursor is returned to the start of the
// frame, the border log is left with only its start sentinel and the whole
// display will be redrawn.
func (d *Display) Plumb(flashPhase bool, flashFrames int) {
	d.flashPhase = flashPhase
	d.flashFrames = flashFrames
	d.cursor = coords.Beam{}
	d.border.reset()
	d.RefreshAll()
}

// FlashFrames returns the number of frames since the flash phase last
// changed.
func (d *Display) FlashFrames() int {
	return d.flashFrames
}

// RefreshAll forgets what has been drawn and marks the whole display as
// maybe dirty. The frame will be repainted in its entirety at the end of the
// frame.
func (d *Display) RefreshAll() {
	for y := range d.lastDrawn {
		for x := range d.lastDrawn[y] {
			d.lastDrawn[y][x] = invalidChunk
		}
		d.maybeDirty[y] = allDirty
	}
	for y := range d.lastBorder {
		for x := range d.lastBorder[y] {
			d.lastBorder[y][x] = invalidBorder
		}
	}
	d.redrawAll = true
}

// Flush draws every maybe dirty chunk between the cursor and the current
// beam position. It must be called before any change to what the screen
// memory shows takes effect.
func (d *Display) Flush() {
	d.FlushThrough(d.beam())
}

// ModeChange implements the scld.Display interface. Everything up to the
// beam is drawn in the old mode. Everything after it in the new mode.
func (d *Display) ModeChange(dec scld.DEC) {
	d.Flush()
	d.dec = dec
	d.RefreshAll()
}

// Mode returns the DEC value the display is drawing with.
func (d *Display) Mode() scld.DEC {
	return d.dec
}

// FlashPhase returns true if flashing attributes are currently inverted.
func (d *Display) FlashPhase() bool {
	return d.flashPhase
}

// FrameNum returns the number of completed frames since the last reset.
func (d *Display) FrameNum() int {
	return d.frameNum
}

// beam returns the current beam position in display coordinates.
func (d *Display) beam() coords.Beam {
	return coords.DisplayBeam(d.spec, d.clock.TStates())
}

// render returns the rendered value of the chunk. The value can be compared
// with previous values to decide if the chunk has changed.
//
//	bits 0-15	pixel data (bits 8-15 only for hires modes)
//	bits 16-19	ink
//	bits 20-23	paper
//	bit 24		hires
func (d *Display) render(col int, line int) uint32 {
	ls := lineStart[line] + uint16(col)

	var data uint16
	var attr uint8

	switch d.dec.ScreenMode() {
	case scld.Standard:
		data = uint16(d.screen.ScreenByte(ls))
		attr = d.screen.ScreenByte(attrAddress(col, line))
	case scld.AltDFile:
		data = uint16(d.screen.ScreenByte(altOffset + ls))
		attr = d.screen.ScreenByte(altOffset + attrAddress(col, line))
	case scld.ExtColour, scld.ExtColAltD:
		data = uint16(d.screen.ScreenByte(ls))
		attr = d.screen.ScreenByte(altOffset + ls)
	default:
		// hires modes. the even columns are in the first screen file and
		// the odd columns in the second
		data = uint16(d.screen.ScreenByte(ls))<<8 | uint16(d.screen.ScreenByte(altOffset+ls))
		c := uint32(d.dec.HiresColour())
		ink := (7 - c) | 0x08
		paper := c | 0x08
		return uint32(data) | ink<<16 | paper<<20 | 1<<24
	}

	ink := uint32(attr & 0x07)
	paper := uint32((attr >> 3) & 0x07)
	if attr&0x40 == 0x40 {
		ink |= 0x08
		paper |= 0x08
	}
	if attr&0x80 == 0x80 && d.flashPhase {
		ink, paper = paper, ink
	}

	return uint32(data) | ink<<16 | paper<<20
}

// drawChunk plots the chunk if it differs from what was last drawn.
func (d *Display) drawChunk(col int, line int) {
	v := d.render(col, line)
	if v == d.lastDrawn[line][col] {
		return
	}
	d.lastDrawn[line][col] = v

	sc := col + specification.BorderCols
	sl := line + specification.BorderLines
	ink := uint8(v>>16) & 0x0f
	paper := uint8(v>>20) & 0x0f

	if v&(1<<24) == 1<<24 {
		for _, r := range d.renderers {
			r.PlotChunk16(sc, sl, uint16(v), ink, paper)
		}
	} else {
		for _, r := range d.renderers {
			r.PlotChunk8(sc, sl, uint8(v), ink, paper)
		}
	}

	d.isDirty[sl] |= 1 << sc
}
