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

// Package memorymap describes how the 64K address space seen by the CPU is
// divided into windows, each of which is backed by one page from the pool.
//
// The smallest window is one page (4K). Paging hardware works in larger
// units: the 128K paging register switches 16K banks and the Timex HSR
// switches 8K chunks. Helper functions are provided to set windows in these
// larger units.
package memorymap

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/specx/hardware/memory/pool"
)

// NumWindows is the number of windows in the 64K address space.
const NumWindows = 0x10000 / pool.PageSize

// Number of windows in the larger paging units.
const (
	WindowsIn8K  = 0x2000 / pool.PageSize
	WindowsIn16K = 0x4000 / pool.PageSize
)

// NumChunks is the number of 8K chunks in the address space.
const NumChunks = NumWindows / WindowsIn8K

// Origins of the 16K banks in the address space.
const (
	OriginROM    = uint16(0x0000)
	OriginScreen = uint16(0x4000)
	OriginMiddle = uint16(0x8000)
	OriginTop    = uint16(0xc000)
)

// Window returns the index of the window containing the address.
func Window(addr uint16) int {
	return int(addr / pool.PageSize)
}

// Chunk returns the index of the 8K chunk containing the address.
func Chunk(addr uint16) int {
	return int(addr / 0x2000)
}

// Map is a complete memory map. Read and Write are separate tables so that a
// window can be read from one page and written to another. Both tables must
// be fully populated.
//
// Map is a value type. Two maps are identical if they compare as equal with
// the == operator.
type Map struct {
	Read  [NumWindows]pool.Handle
	Write [NumWindows]pool.Handle
}

// NewMap returns a map with every window set to NoPage.
func NewMap() Map {
	var m Map
	for i := range m.Read {
		m.Read[i] = pool.NoPage
		m.Write[i] = pool.NoPage
	}
	return m
}

// SetWindow sets the read and write page of a single window.
func (m *Map) SetWindow(window int, h pool.Handle) {
	m.Read[window] = h
	m.Write[window] = h
}

// Set16K maps four pages into the 16K bank starting at origin. The origin
// should be one of the Origin* values.
func (m *Map) Set16K(origin uint16, pages []pool.Handle) {
	w := Window(origin)
	for i := 0; i < WindowsIn16K && i < len(pages); i++ {
		m.SetWindow(w+i, pages[i])
	}
}

// Set8K maps two pages into the 8K chunk.
func (m *Map) Set8K(chunk int, pages []pool.Handle) {
	w := chunk * WindowsIn8K
	for i := 0; i < WindowsIn8K && i < len(pages); i++ {
		m.SetWindow(w+i, pages[i])
	}
}

// Complete returns true if every window in the map is backed by a valid page.
func (m *Map) Complete(p *pool.Pool) bool {
	for i := range m.Read {
		if !p.Valid(m.Read[i]) || !p.Valid(m.Write[i]) {
			return false
		}
	}
	return true
}

// Uses returns true if the page is referenced by any window in the map.
func (m *Map) Uses(h pool.Handle) bool {
	for i := range m.Read {
		if m.Read[i] == h || m.Write[i] == h {
			return true
		}
	}
	return false
}

// Summary returns a one line description of the source of each 8K chunk in
// the map. For example:
//
//	ROM0 ROM0 RAM5 RAM5 RAM2 RAM2 DOCK6 DOCK7
func (m *Map) Summary(p *pool.Pool) string {
	s := strings.Builder{}
	for c := 0; c < NumChunks; c++ {
		pg := p.Page(m.Read[c*WindowsIn8K])
		if pg == nil {
			s.WriteString("- ")
			continue
		}
		s.WriteString(fmt.Sprintf("%s%d ", pg.Source, pg.Bank))
	}
	return strings.TrimSpace(s.String())
}
