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

// Package pool owns the physical memory of the emulated machine. Memory is
// divided into fixed size pages which are allocated from, and returned to, a
// single Pool.
//
// Pages are referenced by Handle rather than by pointer. A memory map is
// therefore a table of integers which can be compared and copied freely.
//
// Pages that are in use by the current memory map must never be freed. The
// Release() function takes an InUse function which it uses to decide whether
// the page can be freed immediately. If it can't, the page is marked for
// release and is freed by a later call to Collect().
package pool

import (
	"fmt"

	"github.com/jetsetilly/specx/curated"
)

// PageSize is the size of every page in the pool. The smallest unit of
// memory mapping is one page.
const PageSize = 0x1000

// PageMask masks an address to an offset within a page.
const PageMask = PageSize - 1

// PageError is the pattern used for errors returned when a handle is used
// incorrectly.
const PageError = "pool: %v"

// Source identifies what kind of memory a page represents.
type Source int

// List of valid Source values.
const (
	None Source = iota
	ROM
	RAM
	Dock
	Exrom
)

func (src Source) String() string {
	switch src {
	case None:
		return "none"
	case ROM:
		return "ROM"
	case RAM:
		return "RAM"
	case Dock:
		return "DOCK"
	case Exrom:
		return "EXROM"
	}
	return "unknown"
}

// Handle refers to a Page in the Pool.
type Handle int

// NoPage is the handle value that never refers to a page.
const NoPage Handle = -1

// Page is one page of memory and the information needed to map it.
type Page struct {
	Data []uint8

	Source Source

	// index of the bank this page is a part of and the offset of the page
	// within that bank
	Bank   int
	Offset uint16

	Writable  bool
	Contended bool

	// page content should be saved in a snapshot even when the page isn't
	// mapped
	SaveToSnapshot bool
}

func (pg *Page) String() string {
	return fmt.Sprintf("%s %d+%04x", pg.Source, pg.Bank, pg.Offset)
}

// Pool is the arena of pages.
type Pool struct {
	pages []*Page

	// handles that can be reused by Allocate()
	free []Handle

	// handles marked for release but which were in use at the time
	pending []Handle
}

// NewPool is the preferred method of initialisation for the Pool type.
func NewPool() *Pool {
	return &Pool{}
}

// Allocate a new page. The data of the page is zeroed.
func (p *Pool) Allocate(source Source, bank int, offset uint16, writable bool, contended bool) Handle {
	pg := &Page{
		Data:      make([]uint8, PageSize),
		Source:    source,
		Bank:      bank,
		Offset:    offset,
		Writable:  writable,
		Contended: contended,
	}

	if len(p.free) > 0 {
		h := p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]
		p.pages[h] = pg
		return h
	}

	p.pages = append(p.pages, pg)
	return Handle(len(p.pages) - 1)
}

// AllocateBank allocates enough pages for a bank of the specified size. The
// size is rounded up to a whole number of pages.
func (p *Pool) AllocateBank(source Source, bank int, size int, writable bool, contended bool) []Handle {
	n := (size + PageSize - 1) / PageSize
	h := make([]Handle, n)
	for i := range h {
		h[i] = p.Allocate(source, bank, uint16(i*PageSize), writable, contended)
	}
	return h
}

// Valid returns true if the handle refers to an allocated page.
func (p *Pool) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(p.pages) && p.pages[h] != nil
}

// Page returns the page referred to by the handle. Returns nil if the handle
// is not valid.
func (p *Pool) Page(h Handle) *Page {
	if !p.Valid(h) {
		return nil
	}
	return p.pages[h]
}

// Load copies data into consecutive pages, starting at the beginning of the
// first page. Returns an error if the data will not fit.
func (p *Pool) Load(handles []Handle, data []uint8) error {
	if len(data) > len(handles)*PageSize {
		return curated.Errorf(PageError, fmt.Sprintf("%d bytes will not fit in %d pages", len(data), len(handles)))
	}
	for i, h := range handles {
		pg := p.Page(h)
		if pg == nil {
			return curated.Errorf(PageError, fmt.Sprintf("invalid handle (%d)", h))
		}
		if i*PageSize >= len(data) {
			break
		}
		copy(pg.Data, data[i*PageSize:])
	}
	return nil
}

// InUse functions report whether a page is currently referenced by the memory
// map.
type InUse func(h Handle) bool

// Release returns a page to the pool. If the page is in use it is marked for
// release and will be freed by a later call to Collect().
func (p *Pool) Release(h Handle, inUse InUse) error {
	if !p.Valid(h) {
		return curated.Errorf(PageError, fmt.Sprintf("release of invalid handle (%d)", h))
	}

	if inUse != nil && inUse(h) {
		for _, q := range p.pending {
			if q == h {
				return nil
			}
		}
		p.pending = append(p.pending, h)
		return nil
	}

	for i, q := range p.pending {
		if q == h {
			p.pending = append(p.pending[:i], p.pending[i+1:]...)
			break
		}
	}

	p.free = append(p.free, h)
	p.pages[h] = nil

	return nil
}

// Collect frees any pages marked for release that are no longer in use.
// Returns the number of pages freed.
func (p *Pool) Collect(inUse InUse) int {
	n := 0
	remaining := p.pending[:0]
	for _, h := range p.pending {
		if inUse != nil && inUse(h) {
			remaining = append(remaining, h)
			continue
		}
		p.free = append(p.free, h)
		p.pages[h] = nil
		n++
	}
	p.pending = remaining
	return n
}

// Pending returns true if the page has been marked for release.
func (p *Pool) Pending(h Handle) bool {
	for _, q := range p.pending {
		if q == h {
			return true
		}
	}
	return false
}

// Allocated returns the number of pages currently allocated.
func (p *Pool) Allocated() int {
	return len(p.pages) - len(p.free)
}
