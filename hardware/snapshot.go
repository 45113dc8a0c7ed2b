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

	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/hardware/memory/memorymap"
	"github.com/jetsetilly/specx/hardware/memory/pool"
	"github.com/jetsetilly/specx/hardware/scld"
	"github.com/jetsetilly/specx/hardware/snapshot"
	"github.com/jetsetilly/specx/logger"
)

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *snapshot.Snapshot {
	s := snapshot.NewSnapshot(m.Variant.ID())
	s.TStates = m.tstates
	s.Last7FFD = m.last7FFD
	if m.SCLD != nil {
		s.HSR = uint8(m.SCLD.HSR())
		s.DEC = uint8(m.SCLD.DEC())
	}
	s.ULA = m.ULA.Last()

	for b, h := range m.Mem.RAM {
		s.RAM[b] = m.Mem.Bank(h)
	}

	for c := 0; c < memorymap.NumChunks; c++ {
		if m.Mem.HasChunk(pool.Dock, c) {
			h := m.Mem.Chunk(pool.Dock, c)
			s.Dock[c] = &snapshot.Chunk{
				Data:     m.Mem.Bank(h),
				Writable: m.Mem.Pool.Page(h[0]).Writable,
			}
		}
		if m.Mem.HasChunk(pool.Exrom, c) {
			h := m.Mem.Chunk(pool.Exrom, c)
			s.Exrom[c] = &snapshot.Chunk{
				Data:     m.Mem.Bank(h),
				Writable: m.Mem.Pool.Page(h[0]).Writable,
			}
		}
	}

	s.DockActive = m.dockActive
	s.FlashPhase = m.Display.FlashPhase()
	s.FlashFrames = m.Display.FlashFrames()

	return s
}

// Plumb a previously snapshotted state into the machine. The snapshot must
// be for the same machine variant.
//
// Inconsistencies in the snapshot are logged and the inconsistent part of the
// snapshot is ignored. In particular, a snapshot that says the dock is active
// but contains no DOCK chunks is treated as having an empty dock.
func (m *Machine) Plumb(s *snapshot.Snapshot) error {
	if s.Machine != m.Variant.ID() {
		return curated.Errorf("machine: %v", fmt.Sprintf("snapshot is for a %s machine not a %s", s.Machine, m.Variant.ID()))
	}

	for b, d := range s.RAM {
		if b < 0 || b >= len(m.Mem.RAM) {
			logger.Log(m.env, "snapshot", curated.Errorf(snapshot.Inconsistency, fmt.Sprintf("no RAM bank %d", b)))
			continue
		}
		if err := m.Mem.Pool.Load(m.Mem.RAM[b], d); err != nil {
			logger.Log(m.env, "snapshot", curated.Errorf(snapshot.Inconsistency, err))
		}
	}

	m.dockActive = s.DockActive
	if s.DockActive && s.DockChunks() == 0 {
		logger.Log(m.env, "snapshot", curated.Errorf(snapshot.Inconsistency, "dock is active but has no data"))
		m.dockActive = false
	}

	// every machine with an HSR has cartridge memory. on the SE the memory
	// is built in but is restored in the same way
	if m.Variant.HasHSR() {
		for c := 0; c < memorymap.NumChunks; c++ {
			if err := m.plumbChunk(pool.Dock, c, s.Dock[c]); err != nil {
				return err
			}
			if err := m.plumbChunk(pool.Exrom, c, s.Exrom[c]); err != nil {
				return err
			}
		}
	}

	m.tstates = s.TStates
	m.last7FFD = s.Last7FFD
	if m.SCLD != nil {
		m.SCLD.Plumb(scld.DEC(s.DEC), scld.HSR(s.HSR))
	}
	m.ULA.Plumb(s.ULA)

	// screen contents were replaced outside of the CPU bus. nothing is
	// flushed from the old screen bank
	m.Mem.ScreenBank = m.Variant.ScreenBank(m.registers())
	m.Display.Plumb(s.FlashPhase, s.FlashFrames)
	m.RemapMemory()

	return nil
}

func (m *Machine) plumbChunk(src pool.Source, chunk int, c *snapshot.Chunk) error {
	if c == nil {
		if m.Mem.HasChunk(src, chunk) {
			return m.Mem.EjectBank(src, chunk)
		}
		return nil
	}
	return m.Mem.InstallBank(src, chunk, c.Data, c.Writable)
}
