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

package pool_test

import (
	"testing"

	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/hardware/memory/pool"
	"github.com/jetsetilly/specx/test"
)

func TestAllocateBank(t *testing.T) {
	p := pool.NewPool()

	h := p.AllocateBank(pool.RAM, 5, 0x4000, true, true)
	test.DemandEquality(t, len(h), 4)

	for i := range h {
		pg := p.Page(h[i])
		test.DemandSuccess(t, pg != nil)
		test.ExpectEquality(t, len(pg.Data), pool.PageSize)
		test.ExpectEquality(t, pg.Bank, 5)
		test.ExpectEquality(t, pg.Offset, uint16(i*pool.PageSize))
		test.ExpectEquality(t, pg.Source, pool.RAM)
		test.ExpectSuccess(t, pg.Writable)
		test.ExpectSuccess(t, pg.Contended)
	}

	// 8K bank rounds to two pages
	h = p.AllocateBank(pool.Dock, 0, 0x2000, false, false)
	test.ExpectEquality(t, len(h), 2)
	test.ExpectEquality(t, p.Allocated(), 6)
}

func TestLoad(t *testing.T) {
	p := pool.NewPool()
	h := p.AllocateBank(pool.ROM, 0, 0x2000, false, false)

	data := make([]uint8, 0x2000)
	data[0] = 0x01
	data[0x1000] = 0x02
	data[0x1fff] = 0x03
	test.DemandSuccess(t, p.Load(h, data))

	test.ExpectEquality(t, p.Page(h[0]).Data[0], uint8(0x01))
	test.ExpectEquality(t, p.Page(h[1]).Data[0], uint8(0x02))
	test.ExpectEquality(t, p.Page(h[1]).Data[0xfff], uint8(0x03))

	// too much data
	err := p.Load(h, make([]uint8, 0x2001))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, pool.PageError))
}

func TestDeferredRelease(t *testing.T) {
	p := pool.NewPool()
	h := p.Allocate(pool.Dock, 0, 0, true, false)

	mapped := true
	inUse := func(q pool.Handle) bool {
		return mapped && q == h
	}

	// page is in use so it is not freed
	test.ExpectSuccess(t, p.Release(h, inUse))
	test.ExpectSuccess(t, p.Valid(h))
	test.ExpectSuccess(t, p.Pending(h))

	// still in use, collect does nothing
	test.ExpectEquality(t, p.Collect(inUse), 0)
	test.ExpectSuccess(t, p.Valid(h))

	// page is unmapped and collect frees it
	mapped = false
	test.ExpectEquality(t, p.Collect(inUse), 1)
	test.ExpectFailure(t, p.Valid(h))
	test.ExpectFailure(t, p.Pending(h))

	// handle is reused by the next allocation
	g := p.Allocate(pool.RAM, 0, 0, true, false)
	test.ExpectEquality(t, g, h)

	// releasing an invalid handle is an error
	test.ExpectFailure(t, p.Release(pool.NoPage, nil))
}

func TestReleasePendingPage(t *testing.T) {
	p := pool.NewPool()
	h := p.Allocate(pool.Exrom, 0, 0, false, false)

	test.ExpectSuccess(t, p.Release(h, func(pool.Handle) bool { return true }))
	test.ExpectSuccess(t, p.Pending(h))

	// releasing again when no longer in use frees immediately and removes
	// the pending mark so that collect does not free it a second time
	test.ExpectSuccess(t, p.Release(h, nil))
	test.ExpectFailure(t, p.Pending(h))
	test.ExpectEquality(t, p.Collect(nil), 0)
	test.ExpectEquality(t, p.Allocated(), 0)
}
