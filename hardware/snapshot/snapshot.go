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

// Package snapshot defines the state of a machine that is saved and restored
// by Machine.Snapshot() and Machine.Plumb().
//
// Snapshots can be encoded as bytes with Marshal() and decoded with
// Unmarshal(). The encoding uses the protobuf wire format, so unknown fields
// added by later versions are skipped rather than causing an error.
package snapshot

import (
	"fmt"
	"sort"
)

// Inconsistency is the pattern used when a snapshot contradicts itself. These
// errors are not fatal. The inconsistent part of the snapshot is ignored.
const Inconsistency = "snapshot: inconsistency: %v"

// DecodeError is the pattern used when snapshot data can't be decoded.
const DecodeError = "snapshot: decode: %v"

// NumChunks is the number of 8K chunks in each of the DOCK and EXROM.
const NumChunks = 8

// Chunk is the content of one chunk of the DOCK or EXROM.
type Chunk struct {
	Data     []uint8
	Writable bool
}

// Snapshot is the state of a machine.
type Snapshot struct {
	// the ID of the machine variant
	Machine string

	// tstates since the start of the frame
	TStates int

	// paging and SCLD registers
	Last7FFD uint8
	HSR      uint8
	DEC      uint8

	// the last byte written to the ULA port
	ULA uint8

	// 16K RAM banks keyed by bank number
	RAM map[int][]uint8

	// cartridge chunks. nil entries are absent chunks
	Dock  [NumChunks]*Chunk
	Exrom [NumChunks]*Chunk

	// the dock contains a cartridge
	DockActive bool

	// flashing attributes are inverted and the number of frames since the
	// phase last changed
	FlashPhase  bool
	FlashFrames int
}

// NewSnapshot is the preferred method of initialisation for the Snapshot type.
func NewSnapshot(machine string) *Snapshot {
	return &Snapshot{
		Machine: machine,
		RAM:     make(map[int][]uint8),
	}
}

// Banks returns the RAM bank numbers in order.
func (s *Snapshot) Banks() []int {
	b := make([]int, 0, len(s.RAM))
	for k := range s.RAM {
		b = append(b, k)
	}
	sort.Ints(b)
	return b
}

// DockChunks returns the number of DOCK chunks that are present.
func (s *Snapshot) DockChunks() int {
	n := 0
	for _, c := range s.Dock {
		if c != nil {
			n++
		}
	}
	return n
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("%s: tstates=%d 7ffd=%02x hsr=%02x dec=%02x ula=%02x banks=%v dock=%d flash=%v/%d",
		s.Machine, s.TStates, s.Last7FFD, s.HSR, s.DEC, s.ULA, s.Banks(), s.DockChunks(), s.FlashPhase, s.FlashFrames)
}
