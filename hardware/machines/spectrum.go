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
	"github.com/jetsetilly/specx/hardware/rom"
	"github.com/jetsetilly/specx/hardware/television/specification"
)

type spectrum48 struct {
	base
}

func (v *spectrum48) ID() string {
	return ID48
}

func (v *spectrum48) Spec() specification.Spec {
	return specification.Spec48
}

func (v *spectrum48) ROMs() []rom.Descriptor {
	return []rom.Descriptor{
		{Filename: "48.rom", Size: memory.BankSize},
	}
}

// only banks 5, 2 and 0 are used but allocating eight banks means the bank
// numbers of the 48K and 128K machines are the same
func (v *spectrum48) Allocate(mem *memory.Memory) {
	mem.AllocateROM(1)
	mem.AllocateRAM(8, contended5)
}

func (v *spectrum48) MemoryMap(mem *memory.Memory, _ Registers) memorymap.Map {
	return HomeMap48(mem)
}

type spectrum128 struct {
	base
}

func (v *spectrum128) ID() string {
	return ID128
}

func (v *spectrum128) Spec() specification.Spec {
	return specification.Spec128
}

func (v *spectrum128) ROMs() []rom.Descriptor {
	return []rom.Descriptor{
		{Filename: romName("128", 0), Size: memory.BankSize, Bank: 0},
		{Filename: romName("128", 1), Size: memory.BankSize, Bank: 1},
	}
}

func (v *spectrum128) Allocate(mem *memory.Memory) {
	mem.AllocateROM(2)
	mem.AllocateRAM(8, contendedOdd)
}

func (v *spectrum128) MemoryMap(mem *memory.Memory, reg Registers) memorymap.Map {
	return pagedMap(mem, reg, 2)
}

func (v *spectrum128) ScreenBank(reg Registers) int {
	return pagedScreen(reg)
}

func (v *spectrum128) HasPaging() bool {
	return true
}

// pagedMap is the memory map for machines with the 128K paging register. The
// middle bank is the RAM bank found at 0x8000.
func pagedMap(mem *memory.Memory, reg Registers, middle int) memorymap.Map {
	m := memorymap.NewMap()
	r := 0
	if reg.Bank7FFD&Paging7FFDROM == Paging7FFDROM {
		r = 1
	}
	m.Set16K(memorymap.OriginROM, mem.ROM[r])
	m.Set16K(memorymap.OriginScreen, mem.RAM[5])
	m.Set16K(memorymap.OriginMiddle, mem.RAM[middle])
	m.Set16K(memorymap.OriginTop, mem.RAM[reg.Bank7FFD&Paging7FFDRAM])
	return m
}

func pagedScreen(reg Registers) int {
	if reg.Bank7FFD&Paging7FFDScreen == Paging7FFDScreen {
		return 7
	}
	return 5
}
