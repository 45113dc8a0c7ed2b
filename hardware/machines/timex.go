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

package machines

import (
	"github.com/jetsetilly/specx/hardware/memory"
	"github.com/jetsetilly/specx/hardware/memory/memorymap"
	"github.com/jetsetilly/specx/hardware/memory/pool"
	"github.com/jetsetilly/specx/hardware/rom"
	"github.com/jetsetilly/specx/hardware/scld"
	"github.com/jetsetilly/specx/hardware/television/specification"
)

// the TC2048 has the SCLD video modes but no HSR and no dock.
type tc2048 struct {
	base
}

func (v *tc2048) ID() string {
	return IDTC2048
}

func (v *tc2048) Spec() specification.Spec {
	return specification.SpecTimex
}

func (v *tc2048) ROMs() []rom.Descriptor {
	return []rom.Descriptor{
		{Filename: "tc2048.rom", Size: memory.BankSize},
	}
}

func (v *tc2048) Allocate(mem *memory.Memory) {
	mem.AllocateROM(1)
	mem.AllocateRAM(8, contended5)
}

func (v *tc2048) MemoryMap(mem *memory.Memory, _ Registers) memorymap.Map {
	return HomeMap48(mem)
}

func (v *tc2048) HasSCLD() bool {
	return true
}

// the TC2068 and TS2068 differ only in their timings and ROM images.
type tc2068 struct {
	base
	id     string
	spec   specification.Spec
	prefix string
}

func (v *tc2068) ID() string {
	return v.id
}

func (v *tc2068) Spec() specification.Spec {
	return v.spec
}

// the EXROM is an 8K image mirrored in every chunk of the EXROM
func (v *tc2068) ROMs() []rom.Descriptor {
	return []rom.Descriptor{
		{Filename: romName(v.prefix, 0), Size: memory.BankSize},
		{Filename: romName(v.prefix, 1), Size: memory.ChunkSize, Optional: true, Exrom: true},
	}
}

func (v *tc2068) Allocate(mem *memory.Memory) {
	mem.AllocateROM(1)
	mem.AllocateRAM(8, contended5)
}

func (v *tc2068) MemoryMap(mem *memory.Memory, reg Registers) memorymap.Map {
	return SCLDMemoryMap(mem, HomeMap48(mem), reg)
}

func (v *tc2068) HasSCLD() bool {
	return true
}

func (v *tc2068) HasHSR() bool {
	return true
}

func (v *tc2068) HasDock() bool {
	return true
}

// the SE combines the 128K paging register with the SCLD. the DOCK and EXROM
// are both 64K of RAM and RAM bank 8 is found at 0x8000.
type se struct {
	base
}

func (v *se) ID() string {
	return IDSE
}

func (v *se) Spec() specification.Spec {
	return specification.SpecTimex
}

func (v *se) ROMs() []rom.Descriptor {
	return []rom.Descriptor{
		{Filename: romName("se", 0), Size: memory.BankSize, Bank: 0},
		{Filename: romName("se", 1), Size: memory.BankSize, Bank: 1},
	}
}

func (v *se) Allocate(mem *memory.Memory) {
	mem.AllocateROM(2)
	mem.AllocateRAM(9, contendedOdd)
	for c := 0; c < memorymap.NumChunks; c++ {
		_ = mem.InstallBank(pool.Dock, c, nil, true)
		_ = mem.InstallBank(pool.Exrom, c, nil, true)
	}
}

func (v *se) MemoryMap(mem *memory.Memory, reg Registers) memorymap.Map {
	m := SCLDMemoryMap(mem, pagedMap(mem, reg, 8), reg)

	// with an odd bank paged in at 0xc000, bits 2 and 3 of the HSR select
	// cartridge memory for the top two chunks
	if reg.Bank7FFD&0x01 == 0x01 {
		src := cartridgeSource(reg.DEC)
		if reg.HSR&0x04 == 0x04 {
			m.Set8K(memorymap.Chunk(0xc000), mem.Chunk(src, 6))
		}
		if reg.HSR&0x08 == 0x08 {
			m.Set8K(memorymap.Chunk(0xe000), mem.Chunk(src, 7))
		}
	}

	return m
}

func (v *se) ScreenBank(reg Registers) int {
	return pagedScreen(reg)
}

// the SCLD ports 0xf4 and 0xff also have A15 and A1 low. the SE decodes A14
// high and A0 high in addition, which neither SCLD port nor the ULA port can
// satisfy
func (v *se) PagingPort() (uint16, uint16) {
	return 0xc003, 0x4001
}

func (v *se) HasPaging() bool {
	return true
}

func (v *se) HasSCLD() bool {
	return true
}

func (v *se) HasHSR() bool {
	return true
}

func cartridgeSource(dec scld.DEC) pool.Source {
	if dec.AltMemBank() {
		return pool.Exrom
	}
	return pool.Dock
}
