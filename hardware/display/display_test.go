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

package display_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/specx/hardware/display"
	"github.com/jetsetilly/specx/hardware/scld"
	"github.com/jetsetilly/specx/hardware/television/coords"
	"github.com/jetsetilly/specx/hardware/television/specification"
	"github.com/jetsetilly/specx/logger"
	"github.com/jetsetilly/specx/test"
)

// recorder is a display.Renderer that records every call made to it
type recorder struct {
	calls []string
}

func (r *recorder) PlotChunk8(col int, line int, data uint8, ink uint8, paper uint8) {
	r.calls = append(r.calls, fmt.Sprintf("plot8 %d,%d %02x %d/%d", col, line, data, ink, paper))
}

func (r *recorder) PlotChunk16(col int, line int, data uint16, ink uint8, paper uint8) {
	r.calls = append(r.calls, fmt.Sprintf("plot16 %d,%d %04x %d/%d", col, line, data, ink, paper))
}

func (r *recorder) PaintArea(x int, y int, w int, h int) {
	r.calls = append(r.calls, fmt.Sprintf("paint %d,%d %dx%d", x, y, w, h))
}

func (r *recorder) FrameEnd() {
	r.calls = append(r.calls, "end")
}

func (r *recorder) reset() {
	r.calls = r.calls[:0]
}

// count the number of calls with the prefix
func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

type clock struct {
	tstates int
}

func (c *clock) TStates() int {
	return c.tstates
}

type bank [0x4000]uint8

func (b *bank) ScreenByte(offset uint16) uint8 {
	return b[offset]
}

type harness struct {
	spec  specification.Spec
	disp  *display.Display
	rec   *recorder
	clk   *clock
	mem   *bank
	frame int
}

func newHarness() *harness {
	h := &harness{
		spec: specification.Spec48,
		rec:  &recorder{},
		clk:  &clock{},
		mem:  &bank{},
	}
	h.disp = display.NewDisplay(logger.Allow, nil, h.spec, h.clk, h.mem)
	h.disp.AddRenderer(h.rec)
	return h
}

func (h *harness) write(offset uint16, data uint8) {
	h.mem[offset] = data
	h.disp.Dirty(offset)
}

// endFrame ends the frame and resets the clock for the next frame
func (h *harness) endFrame() {
	h.clk.tstates = h.spec.TStatesPerFrame
	h.disp.EndFrame()
	h.clk.tstates = 0
}

// settle draws the first frame after a reset and clears the recorder
func (h *harness) settle() {
	h.endFrame()
	h.rec.reset()
}

// beamAt sets the clock so that the display beam is at the column and line
func (h *harness) beamAt(col int, line int) {
	h.clk.tstates = h.spec.TopLeftPixel + line*h.spec.TStatesPerLine + col*specification.TStatesPerCol
}

func TestFirstFrame(t *testing.T) {
	h := newHarness()
	h.endFrame()

	// every chunk of the display and the border is drawn
	test.ExpectEquality(t, h.rec.count("plot8"), specification.DisplayCols*specification.DisplayLines+
		specification.ScreenCols*specification.ScreenLines-specification.DisplayCols*specification.DisplayLines)

	// with a single repaint of the whole screen
	test.ExpectEquality(t, h.rec.count("paint"), 1)
	test.ExpectEquality(t, h.rec.calls[len(h.rec.calls)-2], "paint 0,0 320x240")
	test.ExpectEquality(t, h.rec.calls[len(h.rec.calls)-1], "end")

	// nothing has changed in the second frame
	h.rec.reset()
	h.endFrame()
	test.ExpectEquality(t, len(h.rec.calls), 1)
	test.ExpectEquality(t, h.rec.calls[0], "end")
}

func TestAheadOfBeam(t *testing.T) {
	h := newHarness()
	h.settle()

	// beam is before the display. the write is deferred until the cursor
	// reaches the chunk
	h.write(0x0000, 0xff)
	test.ExpectEquality(t, len(h.rec.calls), 0)
	test.ExpectEquality(t, h.disp.MaybeDirty(0), 0x00000001)

	h.endFrame()
	test.ExpectEquality(t, len(h.rec.calls), 3)
	test.ExpectEquality(t, h.rec.calls[0], "plot8 4,24 ff 0/0")
	test.ExpectEquality(t, h.rec.calls[1], "paint 32,24 8x1")
	test.ExpectEquality(t, h.rec.calls[2], "end")
}

func TestBehindBeam(t *testing.T) {
	h := newHarness()
	h.settle()

	// chunk (5,1) is marked while the beam is before the display
	h.write(0x0105, 0xaa)

	// beam moves to the start of line 2 and the CPU writes to chunk (0,0),
	// which the beam has passed. the critical region is flushed, drawing
	// chunk (5,1), before the new chunk is marked
	h.beamAt(0, 2)
	h.write(0x0000, 0xff)
	test.ExpectEquality(t, len(h.rec.calls), 1)
	test.ExpectEquality(t, h.rec.calls[0], "plot8 9,25 aa 0/0")
	test.ExpectEquality(t, h.disp.Cursor(), coords.Beam{Col: 0, Line: 2})

	// chunk (0,0) is not drawn in this frame
	h.endFrame()
	test.ExpectEquality(t, h.rec.count("plot8"), 1)
	test.ExpectEquality(t, h.disp.MaybeDirty(0), 0x00000001)

	// but it is in the next frame
	h.rec.reset()
	h.endFrame()
	test.ExpectEquality(t, h.rec.calls[0], "plot8 4,24 ff 0/0")
	test.ExpectEquality(t, h.disp.MaybeDirty(0), 0x00000000)
}

func TestContentDiffing(t *testing.T) {
	h := newHarness()
	h.settle()

	// data changed and then changed back before the chunk is flushed
	h.write(0x0000, 0xff)
	h.write(0x0000, 0x00)
	h.endFrame()
	test.ExpectEquality(t, h.rec.count("plot8"), 0)
	test.ExpectEquality(t, h.rec.count("paint"), 0)

	// bright with black ink and paper is a different rendering to black ink
	// and paper without bright
	h.rec.reset()
	h.write(0x1800, 0x40)
	h.endFrame()
	test.ExpectEquality(t, h.rec.count("plot8"), 8)
	test.ExpectEquality(t, h.rec.calls[0], "plot8 4,24 00 8/8")
	test.ExpectEquality(t, h.rec.count("paint 32,24 8x8"), 1)
}

func TestFlash(t *testing.T) {
	h := newHarness()

	// flashing attribute with white ink on black paper
	h.mem[0x1800] = 0x87
	h.settle()

	for i := 0; i < 14; i++ {
		h.endFrame()
	}
	test.ExpectFailure(t, h.disp.FlashPhase())
	test.ExpectEquality(t, h.rec.count("plot8"), 0)

	// the sixteenth frame changes the phase. the flashing chunks are drawn in
	// the following frame
	h.endFrame()
	test.ExpectSuccess(t, h.disp.FlashPhase())
	test.ExpectEquality(t, h.rec.count("plot8"), 0)
	test.ExpectEquality(t, h.disp.MaybeDirty(7), 0x00000001)

	h.endFrame()
	test.ExpectEquality(t, h.rec.count("plot8"), 8)
	test.ExpectEquality(t, h.rec.count("plot8 4,24 00 0/7"), 1)
	test.ExpectEquality(t, h.rec.count("plot8 4,31 00 0/7"), 1)
}

func TestModeChange(t *testing.T) {
	h := newHarness()
	h.settle()

	h.disp.ModeChange(scld.DEC(scld.ExtColour))
	h.endFrame()
	test.ExpectEquality(t, h.rec.count("paint"), 1)
	test.ExpectEquality(t, h.rec.count("paint 0,0 320x240"), 1)

	// in extended colour mode the second screen file holds an attribute for
	// every chunk
	h.rec.reset()
	h.write(0x2000, 0x38)
	h.endFrame()
	test.ExpectEquality(t, h.rec.count("plot8"), 1)
	test.ExpectEquality(t, h.rec.calls[0], "plot8 4,24 00 0/7")
}

func TestHires(t *testing.T) {
	h := newHarness()
	h.settle()

	h.disp.ModeChange(scld.DEC(scld.Hires) | 0x08)
	h.endFrame()
	test.ExpectEquality(t, h.rec.count("plot16"), specification.DisplayCols*specification.DisplayLines)

	h.rec.reset()
	h.write(0x0000, 0x12)
	h.write(0x2000, 0x34)
	h.endFrame()
	test.ExpectEquality(t, h.rec.calls[0], "plot16 4,24 1234 14/9")
}

func TestDirtyTranslation(t *testing.T) {
	h := newHarness()
	h.settle()

	// standard mode ignores the second screen file
	h.write(0x2000, 0xff)
	h.write(0x1b00, 0xff)
	test.ExpectEquality(t, h.disp.MaybeDirty(0), 0x00000000)

	// bitmap byte for the second line of the first character row
	h.write(0x0100, 0xff)
	test.ExpectEquality(t, h.disp.MaybeDirty(1), 0x00000001)

	// bitmap byte for line 8
	h.write(0x0020, 0xff)
	test.ExpectEquality(t, h.disp.MaybeDirty(8), 0x00000001)

	// attribute for the last cell
	h.write(0x1aff, 0xff)
	for y := 184; y < 192; y++ {
		test.ExpectEquality(t, h.disp.MaybeDirty(y), 0x80000000, y)
	}

	h.endFrame()
	h.disp.ModeChange(scld.DEC(scld.AltDFile))
	h.endFrame()

	// alternate display file ignores the first screen file
	h.write(0x0100, 0x00)
	test.ExpectEquality(t, h.disp.MaybeDirty(1), 0x00000000)
	h.write(0x2100, 0xff)
	test.ExpectEquality(t, h.disp.MaybeDirty(1), 0x00000001)
	h.write(0x3800, 0xff)
	test.ExpectEquality(t, h.disp.MaybeDirty(7), 0x00000001)
}

func TestBorderLog(t *testing.T) {
	h := newHarness()
	h.settle()

	h.beamAt(10, 10)
	h.disp.SetBorder(2)
	h.disp.SetBorder(2)
	l := h.disp.BorderLog()
	test.ExpectEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0], display.BorderChange{})
	test.ExpectEquality(t, l[1], display.BorderChange{Col: 14, Line: 34, Colour: 2})

	// a change at the same beam position replaces the previous change
	h.disp.SetBorder(3)
	l = h.disp.BorderLog()
	test.ExpectEquality(t, len(l), 2)
	test.ExpectEquality(t, l[1].Colour, 3)

	// the hires border is independent
	h.disp.SetHiresBorder(false, 6)
	test.ExpectEquality(t, len(h.disp.BorderLog()), 2)
	h.beamAt(20, 20)
	h.disp.SetHiresBorder(true, 6)
	test.ExpectEquality(t, len(h.disp.BorderLog()), 3)
	test.ExpectEquality(t, h.disp.Border(), 6)
	test.ExpectEquality(t, h.disp.LoresBorder(), 3)

	// the log is reset at the end of the frame with the active colour
	h.endFrame()
	l = h.disp.BorderLog()
	test.ExpectEquality(t, len(l), 1)
	test.ExpectEquality(t, l[0], display.BorderChange{Colour: 6})
}

func TestBorderPaint(t *testing.T) {
	h := newHarness()
	h.settle()

	// a change before the screen starts replaces the start sentinel. the
	// entire border is repainted
	h.disp.SetBorder(1)
	test.ExpectEquality(t, len(h.disp.BorderLog()), 1)
	h.endFrame()

	test.ExpectEquality(t, h.rec.count("plot8"), specification.ScreenCols*specification.ScreenLines-
		specification.DisplayCols*specification.DisplayLines)
	test.ExpectEquality(t, h.rec.count("plot8 0,0 00 1/1"), 1)
	test.ExpectEquality(t, h.rec.count("paint"), 4)
	test.ExpectEquality(t, h.rec.count("paint 0,0 320x24"), 1)
	test.ExpectEquality(t, h.rec.count("paint 0,24 32x192"), 1)
	test.ExpectEquality(t, h.rec.count("paint 288,24 32x192"), 1)
	test.ExpectEquality(t, h.rec.count("paint 0,216 320x24"), 1)

	// change the border for the bottom border only
	h.rec.reset()
	h.clk.tstates = h.spec.ScreenLineStart(216)
	h.disp.SetBorder(4)
	h.endFrame()
	test.ExpectEquality(t, h.rec.count("plot8"), specification.ScreenCols*specification.BorderLines)
	test.ExpectEquality(t, h.rec.count("paint"), 1)
	test.ExpectEquality(t, h.rec.count("paint 0,216 320x24"), 1)

	// in the following frame the border at the top changes to the new
	// colour too
	h.rec.reset()
	h.endFrame()
	test.ExpectEquality(t, h.rec.count("paint 0,0 320x216"), 0)
	test.ExpectEquality(t, h.rec.count("paint 0,0 320x24"), 1)
}
