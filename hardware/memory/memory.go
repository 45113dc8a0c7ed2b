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

package memory

import (
	"fmt"

	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/hardware/memory/memorymap"
	"github.com/jetsetilly/specx/hardware/memory/pool"
)

// BankError is the pattern used for errors caused by bad bank requests.
const BankError = "memory: %v"

// Bank sizes.
const (
	BankSize  = 0x4000
	ChunkSize = 0x2000
)

// Screen memory layout. Offsets are relative to the start of the screen bank.
const (
	ScreenBitmapEnd = 0x1800
	ScreenAttrEnd   = 0x1b00

	// Timex machines have a second screen file in the upper half of the bank
	ScreenAltOffset = 0x2000
)

// ScreenWriter is notified of writes to the screen bank.
type ScreenWriter interface {
	Dirty(offset uint16)
}

// Memory is the physical memory of the machine and the currently installed
// memory map.
type Memory struct {
	Pool *pool.Pool

	// 16K banks of ROM and RAM. the index of the outer slice is the bank
	// number
	ROM [][]pool.Handle
	RAM [][]pool.Handle

	// 8K cartridge chunks. an entry is nil if the chunk is absent
	Dock  [memorymap.NumChunks][]pool.Handle
	Exrom [memorymap.NumChunks][]pool.Handle

	// read-only 8K chunk used for windows that would otherwise be backed by
	// an absent cartridge chunk. filled with 0xff
	Empty []pool.Handle

	// the active memory map
	Map memorymap.Map

	// the RAM bank the ULA is reading the screen from
	ScreenBank int

	// whether writes to the alternate screen area should be reported
	altScreen bool

	screen ScreenWriter
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The altScreen argument should be true for machines with an SCLD.
func NewMemory(altScreen bool) *Memory {
	mem := &Memory{
		Pool:       pool.NewPool(),
		Map:        memorymap.NewMap(),
		ScreenBank: 5,
		altScreen:  altScreen,
	}

	mem.Empty = mem.Pool.AllocateBank(pool.None, 0, ChunkSize, false, false)
	for _, h := range mem.Empty {
		fill(mem.Pool.Page(h).Data, 0xff)
	}

	return mem
}

func fill(d []uint8, v uint8) {
	for i := range d {
		d[i] = v
	}
}

// AttachScreen sets the ScreenWriter that is notified of screen writes.
func (mem *Memory) AttachScreen(screen ScreenWriter) {
	mem.screen = screen
}

// AllocateROM allocates n banks of ROM. ROM contents are 0xff until loaded.
func (mem *Memory) AllocateROM(n int) {
	mem.ROM = make([][]pool.Handle, n)
	for b := range mem.ROM {
		mem.ROM[b] = mem.Pool.AllocateBank(pool.ROM, b, BankSize, false, false)
		for _, h := range mem.ROM[b] {
			fill(mem.Pool.Page(h).Data, 0xff)
		}
	}
}

// AllocateRAM allocates n banks of RAM. The contended function decides
// which banks are contended. It can be nil, meaning no contention.
func (mem *Memory) AllocateRAM(n int, contended func(bank int) bool) {
	mem.RAM = make([][]pool.Handle, n)
	for b := range mem.RAM {
		c := contended != nil && contended(b)
		mem.RAM[b] = mem.Pool.AllocateBank(pool.RAM, b, BankSize, true, c)
		for _, h := range mem.RAM[b] {
			mem.Pool.Page(h).SaveToSnapshot = true
		}
	}
}

// LoadROM copies the data into the ROM bank. The data must be exactly the
// size of a bank.
func (mem *Memory) LoadROM(bank int, data []uint8) error {
	if bank < 0 || bank >= len(mem.ROM) {
		return curated.Errorf(BankError, fmt.Sprintf("no ROM bank %d", bank))
	}
	if len(data) != BankSize {
		return curated.Errorf(BankError, fmt.Sprintf("ROM bank %d must be %d bytes", bank, BankSize))
	}
	return mem.Pool.Load(mem.ROM[bank], data)
}

func (mem *Memory) chunks(source pool.Source) (*[memorymap.NumChunks][]pool.Handle, error) {
	switch source {
	case pool.Dock:
		return &mem.Dock, nil
	case pool.Exrom:
		return &mem.Exrom, nil
	}
	return nil, curated.Errorf(BankError, fmt.Sprintf("%s is not a cartridge source", source))
}

// InstallBank installs an 8K chunk of DOCK or EXROM memory. Data shorter
// than a chunk is padded. Padding is zero for writable chunks and 0xff
// otherwise. Any chunk already installed is released.
//
// The memory map is not recomputed. The caller must do that and then call
// SetMap(), at which point the memory of the replaced chunk is reclaimed.
func (mem *Memory) InstallBank(source pool.Source, chunk int, data []uint8, writable bool) error {
	c, err := mem.chunks(source)
	if err != nil {
		return err
	}
	if chunk < 0 || chunk >= memorymap.NumChunks {
		return curated.Errorf(BankError, fmt.Sprintf("no %s chunk %d", source, chunk))
	}
	if len(data) > ChunkSize {
		return curated.Errorf(BankError, fmt.Sprintf("%s chunk %d: too much data (%d bytes)", source, chunk, len(data)))
	}

	if err := mem.EjectBank(source, chunk); err != nil {
		return err
	}

	h := mem.Pool.AllocateBank(source, chunk, ChunkSize, writable, false)
	for _, p := range h {
		pg := mem.Pool.Page(p)
		pg.SaveToSnapshot = writable
		if !writable {
			fill(pg.Data, 0xff)
		}
	}
	if err := mem.Pool.Load(h, data); err != nil {
		return err
	}
	c[chunk] = h

	return nil
}

// EjectBank removes an 8K chunk of DOCK or EXROM memory. The pages are freed
// once they are no longer mapped. It is not an error to eject an absent
// chunk.
func (mem *Memory) EjectBank(source pool.Source, chunk int) error {
	c, err := mem.chunks(source)
	if err != nil {
		return err
	}
	if chunk < 0 || chunk >= memorymap.NumChunks {
		return curated.Errorf(BankError, fmt.Sprintf("no %s chunk %d", source, chunk))
	}
	for _, h := range c[chunk] {
		if err := mem.Pool.Release(h, mem.InUse); err != nil {
			return err
		}
	}
	c[chunk] = nil
	return nil
}

// Chunk returns the pages for the DOCK or EXROM chunk. If the chunk is absent
// the Empty pages are returned.
func (mem *Memory) Chunk(source pool.Source, chunk int) []pool.Handle {
	c, err := mem.chunks(source)
	if err != nil || c[chunk] == nil {
		return mem.Empty
	}
	return c[chunk]
}

// HasChunk returns true if the DOCK or EXROM chunk is present.
func (mem *Memory) HasChunk(source pool.Source, chunk int) bool {
	c, err := mem.chunks(source)
	return err == nil && c[chunk] != nil
}

// InUse returns true if the page is referenced by the active memory map.
func (mem *Memory) InUse(h pool.Handle) bool {
	return mem.Map.Uses(h)
}

// SetMap installs a new memory map. Pages released while they were mapped are
// reclaimed if the new map no longer uses them.
func (mem *Memory) SetMap(m memorymap.Map) {
	mem.Map = m
	mem.Pool.Collect(mem.InUse)
}

// ReadByte implements the bus.CPUBus interface.
func (mem *Memory) ReadByte(address uint16) uint8 {
	pg := mem.Pool.Page(mem.Map.Read[memorymap.Window(address)])
	return pg.Data[address&pool.PageMask]
}

// WriteByte implements the bus.CPUBus interface. Writes to read-only pages
// are ignored.
func (mem *Memory) WriteByte(address uint16, data uint8) {
	pg := mem.Pool.Page(mem.Map.Write[memorymap.Window(address)])
	if !pg.Writable {
		return
	}
	mem.write(pg, address, data)
}

func (mem *Memory) write(pg *pool.Page, address uint16, data uint8) {
	idx := address & pool.PageMask
	if pg.Data[idx] == data {
		return
	}
	pg.Data[idx] = data

	if mem.screen == nil || pg.Source != pool.RAM || pg.Bank != mem.ScreenBank {
		return
	}

	offset := pg.Offset + idx
	if offset < ScreenAttrEnd || (mem.altScreen && offset >= ScreenAltOffset && offset < ScreenAltOffset+ScreenAttrEnd) {
		mem.screen.Dirty(offset)
	}
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.ReadByte(address)
}

// Poke implements the bus.DebuggerBus interface. Unlike WriteByte(), a poke
// will change the contents of a read-only page. The shared page behind
// absent cartridge chunks is never changed.
func (mem *Memory) Poke(address uint16, value uint8) {
	pg := mem.Pool.Page(mem.Map.Write[memorymap.Window(address)])
	if pg.Source == pool.None {
		return
	}
	mem.write(pg, address, value)
}

// Contended returns true if the address is in contended memory.
func (mem *Memory) Contended(address uint16) bool {
	return mem.Pool.Page(mem.Map.Read[memorymap.Window(address)]).Contended
}

// ScreenByte returns the byte at the offset in the current screen bank. The
// display reads through this function rather than through the memory map.
func (mem *Memory) ScreenByte(offset uint16) uint8 {
	h := mem.RAM[mem.ScreenBank][offset/pool.PageSize]
	return mem.Pool.Page(h).Data[offset&pool.PageMask]
}

// Bank returns a copy of the contents of the pages.
func (mem *Memory) Bank(handles []pool.Handle) []uint8 {
	d := make([]uint8, 0, len(handles)*pool.PageSize)
	for _, h := range handles {
		d = append(d, mem.Pool.Page(h).Data...)
	}
	return d
}

// MappedBanks returns a summary of the active memory map.
func (mem *Memory) MappedBanks() string {
	return mem.Map.Summary(mem.Pool)
}
