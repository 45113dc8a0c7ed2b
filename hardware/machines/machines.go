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

// Package machines describes each member of the Spectrum family supported
// by the emulation. A Variant is chosen once, when the machine is created,
// and answers every question about the machine that differs between
// members of the family: timings, ROMs, memory allocation and, most
// importantly, the memory map for a given state of the paging registers.
//
// MemoryMap() is a pure function of the allocated memory and the registers.
// Calling it twice with the same arguments produces identical maps.
package machines

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/hardware/memory"
	"github.com/jetsetilly/specx/hardware/memory/memorymap"
	"github.com/jetsetilly/specx/hardware/rom"
	"github.com/jetsetilly/specx/hardware/scld"
	"github.com/jetsetilly/specx/hardware/television/specification"
)

// UnknownMachine is the pattern used when an unrecognised machine ID is
// requested.
const UnknownMachine = "machines: unknown machine (%s)"

// Registers is the state of all paging registers that can affect the memory
// map. Registers not present on a machine are ignored.
type Registers struct {
	Bank7FFD uint8
	HSR      scld.HSR
	DEC      scld.DEC
}

// Bits of the 128K paging register.
const (
	Paging7FFDRAM    = 0x07
	Paging7FFDScreen = 0x08
	Paging7FFDROM    = 0x10
	Paging7FFDLock   = 0x20
)

// Variant is implemented by every supported machine.
type Variant interface {
	ID() string
	Spec() specification.Spec
	ROMs() []rom.Descriptor

	// allocate the ROM and RAM banks, and any cartridge memory that is
	// built into the machine
	Allocate(mem *memory.Memory)

	MemoryMap(mem *memory.Memory, reg Registers) memorymap.Map
	ScreenBank(reg Registers) int

	// the address lines decoded by the 128K paging port, as a mask and the
	// value the masked lines must have. only used if HasPaging() is true
	PagingPort() (mask uint16, value uint16)

	// the peripherals present on the machine
	HasPaging() bool
	HasSCLD() bool
	HasHSR() bool
	HasDock() bool

	// the value read from a port no peripheral responds to
	UnattachedPort() uint8
}

// List of machine IDs.
const (
	ID48     = "48"
	ID128    = "128"
	IDTC2048 = "TC2048"
	IDTC2068 = "TC2068"
	IDTS2068 = "TS2068"
	IDSE     = "SE"
)

// List of all machine IDs, in a sensible order for presentation.
var List = []string{ID48, ID128, IDTC2048, IDTC2068, IDTS2068, IDSE}

// NewVariant returns the Variant for the machine ID. The ID is not case
// sensitive.
func NewVariant(id string) (Variant, error) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case ID48:
		return &spectrum48{}, nil
	case ID128:
		return &spectrum128{}, nil
	case IDTC2048:
		return &tc2048{}, nil
	case IDTC2068:
		return &tc2068{id: IDTC2068, spec: specification.SpecTimex, prefix: "tc2068"}, nil
	case IDTS2068:
		return &tc2068{id: IDTS2068, spec: specification.SpecTS2068, prefix: "ts2068"}, nil
	case IDSE:
		return &se{}, nil
	}
	return nil, curated.Errorf(UnknownMachine, id)
}

// HomeMap48 is the memory map of the 48K machine. ROM 0 followed by RAM
// banks 5, 2 and 0.
func HomeMap48(mem *memory.Memory) memorymap.Map {
	m := memorymap.NewMap()
	m.Set16K(memorymap.OriginROM, mem.ROM[0])
	m.Set16K(memorymap.OriginScreen, mem.RAM[5])
	m.Set16K(memorymap.OriginMiddle, mem.RAM[2])
	m.Set16K(memorymap.OriginTop, mem.RAM[0])
	return m
}

// SCLDMemoryMap overlays the home map with the cartridge chunks selected by
// the HSR. The DOCK is used unless the altmembank bit of the DEC is set, in
// which case the EXROM is used. Absent chunks are backed by empty memory.
func SCLDMemoryMap(mem *memory.Memory, home memorymap.Map, reg Registers) memorymap.Map {
	m := home
	src := cartridgeSource(reg.DEC)
	for c := 0; c < memorymap.NumChunks; c++ {
		if reg.HSR.Enabled(c) {
			m.Set8K(c, mem.Chunk(src, c))
		}
	}
	return m
}

func contended5(bank int) bool {
	return bank == 5
}

func contendedOdd(bank int) bool {
	return bank&0x01 == 0x01
}

// base is embedded by every variant and provides the most common answers.
type base struct{}

func (base) ScreenBank(_ Registers) int {
	return 5
}

// the 128K decodes A15 and A1 low
func (base) PagingPort() (uint16, uint16) {
	return 0x8002, 0x0000
}

func (base) HasPaging() bool {
	return false
}

func (base) HasSCLD() bool {
	return false
}

func (base) HasHSR() bool {
	return false
}

func (base) HasDock() bool {
	return false
}

func (base) UnattachedPort() uint8 {
	return 0xff
}

func romName(prefix string, n int) string {
	return fmt.Sprintf("%s-%d.rom", prefix, n)
}
