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

// Package ula implements the port of the ULA. Writes to the port set the
// lores border colour and the level of the beeper and MIC output.
//
// The keyboard is not emulated and reads from the port always return 0xff.
package ula

import "github.com/jetsetilly/specx/hardware/ports"

// Border is the part of the display that is given the border colour.
type Border interface {
	SetBorder(colour uint8)
}

// DAC implementations are sent the level of the beeper whenever it changes.
// The level is in the range 0 to 3. Bit 1 is the EAR output and bit 0 is the
// MIC output.
//
// EndFrame() is called at the end of every frame with the length of the
// frame in tstates. The tstates argument of SetLevel() is relative to the
// start of the current frame.
type DAC interface {
	SetLevel(tstates int, level uint8)
	EndFrame(frameLength int)
}

// Clock implementations report the number of tstates since the start of the
// current frame.
type Clock interface {
	TStates() int
}

// Bits of the byte written to the ULA port.
const (
	BorderMask = 0x07
	MICBit     = 0x08
	EARBit     = 0x10
)

// ULA is the state of the ULA port.
type ULA struct {
	border Border
	clock  Clock
	dac    DAC

	last  uint8
	level uint8
}

// NewULA is the preferred method of initialisation for the ULA type. The dac
// argument can be nil.
func NewULA(border Border, clock Clock, dac DAC) *ULA {
	return &ULA{
		border: border,
		clock:  clock,
		dac:    dac,
	}
}

// AttachDAC replaces the DAC. Can be nil.
func (u *ULA) AttachDAC(dac DAC) {
	u.dac = dac
}

// Handler returns the handler for attaching the ULA to the ports. The ULA
// responds to every even port.
func (u *ULA) Handler() ports.Handler {
	return ports.Handler{
		Name:  "ULA",
		Mask:  0x0001,
		Value: 0x0000,
		Read:  u.Read,
		Write: u.Write,
	}
}

// Read the ULA port.
func (u *ULA) Read(_ uint16) uint8 {
	return 0xff
}

// Write to the ULA port.
func (u *ULA) Write(_ uint16, data uint8) {
	u.last = data
	u.border.SetBorder(data & BorderMask)

	var level uint8
	if data&EARBit == EARBit {
		level |= 0x02
	}
	if data&MICBit == MICBit {
		level |= 0x01
	}
	if level != u.level {
		u.level = level
		if u.dac != nil {
			u.dac.SetLevel(u.clock.TStates(), level)
		}
	}
}

// EndFrame forwards the end of frame to the DAC.
func (u *ULA) EndFrame(frameLength int) {
	if u.dac != nil {
		u.dac.EndFrame(frameLength)
	}
}

// Last returns the last value written to the port.
func (u *ULA) Last() uint8 {
	return u.last
}

// Plumb sets the last value written to the port without informing the DAC.
// Used when restoring a snapshot.
func (u *ULA) Plumb(data uint8) {
	u.last = data
	u.border.SetBorder(data & BorderMask)
	u.level = 0
	if data&EARBit == EARBit {
		u.level |= 0x02
	}
	if data&MICBit == MICBit {
		u.level |= 0x01
	}
}
