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

// Package scld implements the SCLD chip of the Timex machines. The SCLD has
// two registers. DEC selects the video mode and HSR selects the memory
// banking. See the registers.go file for details of each register.
//
// The SCLD doesn't draw the screen or map memory itself. It notifies the
// Display, Remapper and Interrupter of the changes that concern them.
package scld

import (
	"github.com/jetsetilly/specx/logger"
)

// Display is notified of changes to the video mode and the hires border.
type Display interface {
	// the screen mode has changed or the hires colour has changed while a
	// hires mode is active
	ModeChange(dec DEC)

	// the hires border colour and whether the hires border is the active
	// border
	SetHiresBorder(hires bool, colour uint8)
}

// Remapper recomputes the memory map.
type Remapper interface {
	RemapMemory()
}

// Interrupter is notified when the interrupt is re-enabled.
type Interrupter interface {
	RetriggerInterrupt()
}

// SCLD is the state of the SCLD registers.
type SCLD struct {
	perm logger.Permission

	dec DEC
	hsr HSR

	display     Display
	remapper    Remapper
	interrupter Interrupter
}

// NewSCLD is the preferred method of initialisation for the SCLD type.
func NewSCLD(perm logger.Permission, display Display, remapper Remapper, interrupter Interrupter) *SCLD {
	return &SCLD{
		perm:        perm,
		display:     display,
		remapper:    remapper,
		interrupter: interrupter,
	}
}

// Reset both registers to zero. The memory map is not recomputed because
// the machine is expected to do that as part of its own reset.
func (s *SCLD) Reset() {
	s.Plumb(0, 0)
}

// Plumb sets the registers without the side effects of a CPU write. The
// display is brought into line with the new video mode. Used when restoring a
// snapshot. Like Reset() the memory map is not recomputed.
func (s *SCLD) Plumb(dec DEC, hsr HSR) {
	old := s.dec
	s.dec = dec
	s.hsr = hsr
	if old.ScreenMode() != dec.ScreenMode() || old.HiresColour() != dec.HiresColour() {
		s.display.ModeChange(dec)
	}
	s.display.SetHiresBorder(dec.Hires(), dec.HiresColour())
}

// DEC returns the current value of the DEC register.
func (s *SCLD) DEC() DEC {
	return s.dec
}

// HSR returns the current value of the HSR register.
func (s *SCLD) HSR() HSR {
	return s.hsr
}

// WriteDEC writes a new value to the DEC register.
func (s *SCLD) WriteDEC(data uint8) {
	old := s.dec
	dec := DEC(data)
	s.dec = dec

	if old.ScreenMode() != dec.ScreenMode() || (dec.Hires() && old.HiresColour() != dec.HiresColour()) {
		logger.Logf(s.perm, "scld", "video mode: %s", dec)
		s.display.ModeChange(dec)
	}

	s.display.SetHiresBorder(dec.Hires(), dec.HiresColour())

	if old.IntDisable() && !dec.IntDisable() {
		s.interrupter.RetriggerInterrupt()
	}

	if old.AltMemBank() != dec.AltMemBank() {
		s.remapper.RemapMemory()
	}
}

// WriteHSR writes a new value to the HSR register. The memory map is always
// recomputed.
func (s *SCLD) WriteHSR(data uint8) {
	s.hsr = HSR(data)
	s.remapper.RemapMemory()
}
