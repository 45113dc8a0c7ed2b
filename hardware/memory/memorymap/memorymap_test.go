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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/specx/hardware/memory/memorymap"
	"github.com/jetsetilly/specx/hardware/memory/pool"
	"github.com/jetsetilly/specx/test"
)

func TestWindows(t *testing.T) {
	test.ExpectEquality(t, memorymap.NumWindows, 16)
	test.ExpectEquality(t, memorymap.NumChunks, 8)
	test.ExpectEquality(t, memorymap.Window(0x0fff), 0)
	test.ExpectEquality(t, memorymap.Window(0xc000), 12)
	test.ExpectEquality(t, memorymap.Chunk(0xdfff), 6)
}

func TestMap(t *testing.T) {
	p := pool.NewPool()
	rom := p.AllocateBank(pool.ROM, 0, 0x4000, false, false)
	ram := p.AllocateBank(pool.RAM, 5, 0x4000, true, true)
	dock := p.AllocateBank(pool.Dock, 2, 0x2000, false, false)

	m := memorymap.NewMap()
	test.ExpectFailure(t, m.Complete(p))

	m.Set16K(memorymap.OriginROM, rom)
	m.Set16K(memorymap.OriginScreen, ram)
	m.Set16K(memorymap.OriginMiddle, ram)
	m.Set16K(memorymap.OriginTop, ram)
	test.ExpectSuccess(t, m.Complete(p))
	test.ExpectFailure(t, m.Uses(dock[0]))

	// maps are values
	n := m
	test.ExpectSuccess(t, n == m)
	n.Set8K(2, dock)
	test.ExpectFailure(t, n == m)
	test.ExpectSuccess(t, n.Uses(dock[1]))
	test.ExpectEquality(t, n.Read[memorymap.Window(0x5000)], dock[1])

	test.ExpectEquality(t, n.Summary(p), "ROM0 ROM0 DOCK2 RAM5 RAM5 RAM5 RAM5 RAM5")
}
