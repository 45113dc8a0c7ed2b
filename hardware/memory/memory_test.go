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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/hardware/memory"
	"github.com/jetsetilly/specx/hardware/memory/memorymap"
	"github.com/jetsetilly/specx/hardware/memory/pool"
	"github.com/jetsetilly/specx/test"
)

type screenLog struct {
	offsets []uint16
}

func (s *screenLog) Dirty(offset uint16) {
	s.offsets = append(s.offsets, offset)
}

// map with ROM 0 followed by RAM banks 5, 2 and 0
func homeMap(mem *memory.Memory) memorymap.Map {
	m := memorymap.NewMap()
	m.Set16K(memorymap.OriginROM, mem.ROM[0])
	m.Set16K(memorymap.OriginScreen, mem.RAM[5])
	m.Set16K(memorymap.OriginMiddle, mem.RAM[2])
	m.Set16K(memorymap.OriginTop, mem.RAM[0])
	return m
}

func newMemory(altScreen bool) (*memory.Memory, *screenLog) {
	mem := memory.NewMemory(altScreen)
	mem.AllocateROM(1)
	mem.AllocateRAM(8, func(bank int) bool { return bank&1 == 1 })
	mem.SetMap(homeMap(mem))
	s := &screenLog{}
	mem.AttachScreen(s)
	return mem, s
}

func TestReadWrite(t *testing.T) {
	mem, _ := newMemory(false)
	test.ExpectSuccess(t, mem.Map.Complete(mem.Pool))

	// ROM is not writable
	test.ExpectEquality(t, mem.ReadByte(0x0010), 0xff)
	mem.WriteByte(0x0010, 0x12)
	test.ExpectEquality(t, mem.ReadByte(0x0010), 0xff)

	// but it can be poked
	mem.Poke(0x0010, 0x12)
	test.ExpectEquality(t, mem.Peek(0x0010), 0x12)

	mem.WriteByte(0x8123, 0x34)
	test.ExpectEquality(t, mem.ReadByte(0x8123), 0x34)
	test.ExpectEquality(t, mem.Bank(mem.RAM[2])[0x0123], 0x34)

	test.ExpectSuccess(t, mem.Contended(0x4000))
	test.ExpectFailure(t, mem.Contended(0x8000))
}

func TestScreenWrites(t *testing.T) {
	mem, s := newMemory(false)

	mem.WriteByte(0x4000, 0x01)
	mem.WriteByte(0x5800, 0x01)
	mem.WriteByte(0x5b00, 0x01)
	mem.WriteByte(0x6000, 0x01)
	test.ExpectEquality(t, len(s.offsets), 2)
	test.ExpectEquality(t, s.offsets[0], 0x0000)
	test.ExpectEquality(t, s.offsets[1], 0x1800)

	// unchanged data is not reported
	mem.WriteByte(0x4000, 0x01)
	test.ExpectEquality(t, len(s.offsets), 2)

	// bank 7 isn't the screen bank
	m := homeMap(mem)
	m.Set16K(memorymap.OriginTop, mem.RAM[7])
	mem.SetMap(m)
	mem.WriteByte(0xc000, 0x01)
	test.ExpectEquality(t, len(s.offsets), 2)

	// but it is once the screen is switched
	mem.ScreenBank = 7
	mem.WriteByte(0xc001, 0x01)
	test.ExpectEquality(t, len(s.offsets), 3)
	test.ExpectEquality(t, s.offsets[2], 0x0001)
	test.ExpectEquality(t, mem.ScreenByte(0x0001), 0x01)
}

func TestAltScreenWrites(t *testing.T) {
	mem, s := newMemory(true)
	mem.WriteByte(0x6000, 0x01)
	mem.WriteByte(0x7aff, 0x01)
	mem.WriteByte(0x7b00, 0x01)
	test.ExpectEquality(t, len(s.offsets), 2)
	test.ExpectEquality(t, s.offsets[0], 0x2000)
	test.ExpectEquality(t, s.offsets[1], 0x3aff)
}

func TestInstallAndEject(t *testing.T) {
	mem, _ := newMemory(true)

	err := mem.InstallBank(pool.RAM, 0, nil, true)
	test.ExpectSuccess(t, curated.Is(err, memory.BankError))

	err = mem.InstallBank(pool.Dock, 0, make([]uint8, memory.ChunkSize+1), true)
	test.ExpectSuccess(t, curated.Is(err, memory.BankError))

	test.ExpectFailure(t, mem.HasChunk(pool.Dock, 3))
	test.ExpectEquality(t, mem.Chunk(pool.Dock, 3)[0], mem.Empty[0])

	// short ROM data is padded with 0xff
	err = mem.InstallBank(pool.Dock, 3, []uint8{0x01, 0x02}, false)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, mem.HasChunk(pool.Dock, 3))

	m := homeMap(mem)
	m.Set8K(3, mem.Chunk(pool.Dock, 3))
	mem.SetMap(m)
	test.ExpectEquality(t, mem.ReadByte(0x6000), 0x01)
	test.ExpectEquality(t, mem.ReadByte(0x6002), 0xff)
	test.ExpectEquality(t, mem.MappedBanks(), "ROM0 ROM0 RAM5 DOCK3 RAM2 RAM2 RAM0 RAM0")

	// ejecting a mapped chunk defers the release
	allocated := mem.Pool.Allocated()
	h := mem.Chunk(pool.Dock, 3)
	test.ExpectSuccess(t, mem.EjectBank(pool.Dock, 3))
	test.ExpectSuccess(t, mem.Pool.Pending(h[0]))
	test.ExpectEquality(t, mem.Pool.Allocated(), allocated)

	// and the pages are reclaimed when the map changes
	mem.SetMap(homeMap(mem))
	test.ExpectFailure(t, mem.Pool.Pending(h[0]))
	test.ExpectEquality(t, mem.Pool.Allocated(), allocated-2)
}

func TestLoadROM(t *testing.T) {
	mem, _ := newMemory(false)
	err := mem.LoadROM(0, make([]uint8, 100))
	test.ExpectSuccess(t, curated.Is(err, memory.BankError))
	err = mem.LoadROM(1, make([]uint8, memory.BankSize))
	test.ExpectSuccess(t, curated.Is(err, memory.BankError))

	d := make([]uint8, memory.BankSize)
	d[0x3fff] = 0xaa
	test.ExpectSuccess(t, mem.LoadROM(0, d))
	test.ExpectEquality(t, mem.ReadByte(0x3fff), 0xaa)
}
