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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/specx/cartridgeloader"
	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/hardware/memory/pool"
	"github.com/jetsetilly/specx/logger"
)

// DockError is the pattern used for errors returned by InsertDock().
const DockError = "dock: %v"

// InsertDock inserts the cartridge in the DCK image into the dock. Blocks for
// the DOCK and EXROM banks replace the existing contents of the chunks they
// describe. HOME blocks are not supported and are ignored.
//
// The image is parsed completely before the machine is changed.
func (m *Machine) InsertDock(data []uint8) error {
	if !m.Variant.HasDock() {
		return curated.Errorf(DockError, fmt.Sprintf("%s has no dock", m.Variant.ID()))
	}

	dck, err := cartridgeloader.ParseDCK(data)
	if err != nil {
		return curated.Errorf(DockError, err)
	}

	for _, blk := range dck.Blocks {
		var src pool.Source
		switch blk.Bank {
		case cartridgeloader.DockBank:
			src = pool.Dock
		case cartridgeloader.ExromBank:
			src = pool.Exrom
		default:
			logger.Logf(m.env, "dock", "ignoring %s block", blk.Bank)
			continue
		}

		for c, ch := range blk.Chunks {
			if ch.Type == cartridgeloader.ChunkAbsent {
				continue
			}
			if err := m.Mem.InstallBank(src, c, ch.Data, ch.Type.Writable()); err != nil {
				return curated.Errorf(DockError, err)
			}
		}
	}

	m.dockActive = true
	m.RemapMemory()

	logger.Logf(m.env, "dock", "inserted cartridge (%d blocks)", len(dck.Blocks))

	return nil
}

// EjectDock removes the cartridge from the dock. The EXROM is unaffected.
func (m *Machine) EjectDock() error {
	if !m.Variant.HasDock() {
		return curated.Errorf(DockError, fmt.Sprintf("%s has no dock", m.Variant.ID()))
	}

	for c := 0; c < len(m.Mem.Dock); c++ {
		if err := m.Mem.EjectBank(pool.Dock, c); err != nil {
			return curated.Errorf(DockError, err)
		}
	}

	m.dockActive = false
	m.RemapMemory()

	return nil
}

// DockActive returns true if a cartridge is inserted in the dock.
func (m *Machine) DockActive() bool {
	return m.dockActive
}
