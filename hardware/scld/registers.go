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

package scld

import (
	"fmt"
	"strings"
)

// ScreenMode is the video mode selected by the lower three bits of the DEC
// register.
type ScreenMode uint8

// List of valid ScreenMode values.
const (
	Standard ScreenMode = iota
	AltDFile
	ExtColour
	ExtColAltD
	HiresAttr
	HiresAttrAltD
	Hires
	HiresDoubleCol
)

func (m ScreenMode) String() string {
	switch m {
	case Standard:
		return "standard"
	case AltDFile:
		return "altdfile"
	case ExtColour:
		return "extcolour"
	case ExtColAltD:
		return "extcolaltd"
	case HiresAttr:
		return "hiresattr"
	case HiresAttrAltD:
		return "hiresattraltd"
	case Hires:
		return "hires"
	case HiresDoubleCol:
		return "hiresdoublecol"
	}
	return "unknown"
}

// DEC is the video mode register of the SCLD. Written through port 0xff.
//
//	bits 0-2	screen mode (bit 0 altdfile, bit 1 extcolour, bit 2 hires)
//	bits 3-5	hires colour
//	bit 6		interrupt disable
//	bit 7		alternative memory bank (EXROM rather than DOCK)
type DEC uint8

// ScreenMode returns the screen mode selected by the register.
func (d DEC) ScreenMode() ScreenMode {
	return ScreenMode(d & 0x07)
}

// AltDFile returns true if the alternate display file is selected.
func (d DEC) AltDFile() bool {
	return d&0x01 == 0x01
}

// ExtColour returns true if extended colour is selected.
func (d DEC) ExtColour() bool {
	return d&0x02 == 0x02
}

// Hires returns true if a hires mode is selected.
func (d DEC) Hires() bool {
	return d&0x04 == 0x04
}

// HiresColour returns the colour selector for the hires modes. The value is
// the paper colour. The ink colour is the complement.
func (d DEC) HiresColour() uint8 {
	return uint8(d>>3) & 0x07
}

// IntDisable returns true if the frame interrupt is disabled.
func (d DEC) IntDisable() bool {
	return d&0x40 == 0x40
}

// AltMemBank returns true if the EXROM is selected in place of the DOCK.
func (d DEC) AltMemBank() bool {
	return d&0x80 == 0x80
}

func (d DEC) String() string {
	s := strings.Builder{}
	s.WriteString(d.ScreenMode().String())
	if d.Hires() {
		s.WriteString(fmt.Sprintf(" col=%d", d.HiresColour()))
	}
	if d.IntDisable() {
		s.WriteString(" intdisable")
	}
	if d.AltMemBank() {
		s.WriteString(" exrom")
	}
	return s.String()
}

// HSR is the horizontal select register of the SCLD. Written through port
// 0xf4. Each bit selects the cartridge memory in place of home memory for
// one 8K chunk of the address space.
type HSR uint8

// Enabled returns true if the 8K chunk is switched to cartridge memory.
func (h HSR) Enabled(chunk int) bool {
	return h&(1<<chunk) != 0
}

func (h HSR) String() string {
	return fmt.Sprintf("%08b", uint8(h))
}
