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

package scld_test

import (
	"testing"

	"github.com/jetsetilly/specx/hardware/scld"
	"github.com/jetsetilly/specx/logger"
	"github.com/jetsetilly/specx/test"
)

type collaborators struct {
	modeChanges  []scld.DEC
	hires        bool
	hiresColour  uint8
	remaps       int
	retriggers   int
	borderWrites int
}

func (c *collaborators) ModeChange(dec scld.DEC) {
	c.modeChanges = append(c.modeChanges, dec)
}

func (c *collaborators) SetHiresBorder(hires bool, colour uint8) {
	c.hires = hires
	c.hiresColour = colour
	c.borderWrites++
}

func (c *collaborators) RemapMemory() {
	c.remaps++
}

func (c *collaborators) RetriggerInterrupt() {
	c.retriggers++
}

func newSCLD() (*scld.SCLD, *collaborators) {
	c := &collaborators{}
	return scld.NewSCLD(logger.Allow, c, c, c), c
}

func TestDECAccessors(t *testing.T) {
	d := scld.DEC(0b1110_1110)
	test.ExpectEquality(t, d.ScreenMode(), scld.Hires)
	test.ExpectFailure(t, d.AltDFile())
	test.ExpectSuccess(t, d.ExtColour())
	test.ExpectSuccess(t, d.Hires())
	test.ExpectEquality(t, d.HiresColour(), 5)
	test.ExpectSuccess(t, d.IntDisable())
	test.ExpectSuccess(t, d.AltMemBank())

	h := scld.HSR(0b1000_0100)
	test.ExpectSuccess(t, h.Enabled(2))
	test.ExpectSuccess(t, h.Enabled(7))
	test.ExpectFailure(t, h.Enabled(0))
}

func TestModeChange(t *testing.T) {
	s, c := newSCLD()

	s.WriteDEC(uint8(scld.ExtColour))
	test.ExpectEquality(t, len(c.modeChanges), 1)
	test.ExpectEquality(t, c.modeChanges[0].ScreenMode(), scld.ExtColour)

	// same mode. no change
	s.WriteDEC(uint8(scld.ExtColour))
	test.ExpectEquality(t, len(c.modeChanges), 1)

	// hires colour change outside of hires is not a mode change
	s.WriteDEC(uint8(scld.ExtColour) | 0x18)
	test.ExpectEquality(t, len(c.modeChanges), 1)
	test.ExpectFailure(t, c.hires)

	s.WriteDEC(uint8(scld.Hires) | 0x18)
	test.ExpectEquality(t, len(c.modeChanges), 2)
	test.ExpectSuccess(t, c.hires)
	test.ExpectEquality(t, c.hiresColour, 3)

	// hires colour change inside of hires is a mode change
	s.WriteDEC(uint8(scld.Hires) | 0x20)
	test.ExpectEquality(t, len(c.modeChanges), 3)
	test.ExpectEquality(t, c.hiresColour, 4)

	// the border is told about every write
	test.ExpectEquality(t, c.borderWrites, 5)

	// no memory changes
	test.ExpectEquality(t, c.remaps, 0)
	test.ExpectEquality(t, c.retriggers, 0)
}

func TestInterruptRetrigger(t *testing.T) {
	s, c := newSCLD()
	s.WriteDEC(0x40)
	test.ExpectEquality(t, c.retriggers, 0)
	s.WriteDEC(0x40)
	test.ExpectEquality(t, c.retriggers, 0)
	s.WriteDEC(0x00)
	test.ExpectEquality(t, c.retriggers, 1)
	s.WriteDEC(0x00)
	test.ExpectEquality(t, c.retriggers, 1)
}

func TestRemap(t *testing.T) {
	s, c := newSCLD()
	s.WriteHSR(0x00)
	test.ExpectEquality(t, c.remaps, 1)
	s.WriteHSR(0x00)
	test.ExpectEquality(t, c.remaps, 2)
	test.ExpectEquality(t, s.HSR(), 0x00)

	s.WriteDEC(0x80)
	test.ExpectEquality(t, c.remaps, 3)
	s.WriteDEC(0x81)
	test.ExpectEquality(t, c.remaps, 3)
	test.ExpectEquality(t, s.DEC(), 0x81)

	s.Reset()
	test.ExpectEquality(t, s.DEC(), 0x00)
	test.ExpectEquality(t, c.remaps, 3)
}
