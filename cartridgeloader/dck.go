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

package cartridgeloader

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/specx/curated"
)

// DCKError is the pattern used for errors returned by ParseDCK().
const DCKError = "dck: %v"

// DCKChunkSize is the size of every chunk in a DCK image.
const DCKChunkSize = 0x2000

// DCKNumChunks is the number of chunks described by each block.
const DCKNumChunks = 8

// DCKBank identifies the bank a block is for.
type DCKBank uint8

// List of valid DCKBank values.
const (
	DockBank  DCKBank = 0x00
	ExromBank DCKBank = 0xfe
	HomeBank  DCKBank = 0xff
)

func (b DCKBank) String() string {
	switch b {
	case DockBank:
		return "DOCK"
	case ExromBank:
		return "EXROM"
	case HomeBank:
		return "HOME"
	}
	return fmt.Sprintf("bank %02x", uint8(b))
}

// DCKChunkType describes the contents of a chunk.
type DCKChunkType uint8

// List of valid DCKChunkType values.
const (
	ChunkAbsent   DCKChunkType = 0x00
	ChunkRAMEmpty DCKChunkType = 0x01
	ChunkROM      DCKChunkType = 0x02
	ChunkRAM      DCKChunkType = 0x03
)

func (t DCKChunkType) String() string {
	switch t {
	case ChunkAbsent:
		return "-"
	case ChunkRAMEmpty:
		return "ram"
	case ChunkROM:
		return "ROM"
	case ChunkRAM:
		return "RAM"
	}
	return "?"
}

// HasData returns true if the chunk type is followed by data in the image.
func (t DCKChunkType) HasData() bool {
	return t == ChunkROM || t == ChunkRAM
}

// Writable returns true if the chunk is RAM.
func (t DCKChunkType) Writable() bool {
	return t == ChunkRAMEmpty || t == ChunkRAM
}

// DCKChunk is one chunk of a block.
type DCKChunk struct {
	Type DCKChunkType

	// nil unless HasData() is true for the type
	Data []uint8
}

// DCKBlock is one block of a DCK image.
type DCKBlock struct {
	Bank   DCKBank
	Chunks [DCKNumChunks]DCKChunk
}

func (blk DCKBlock) String() string {
	s := strings.Builder{}
	s.WriteString(blk.Bank.String())
	s.WriteString(":")
	for _, c := range blk.Chunks {
		s.WriteString(" ")
		s.WriteString(c.Type.String())
	}
	return s.String()
}

// DCK is a parsed DCK image.
type DCK struct {
	Blocks []DCKBlock
}

// ParseDCK parses the data as a DCK image.
func ParseDCK(data []uint8) (*DCK, error) {
	dck := &DCK{}

	if len(data) == 0 {
		return nil, curated.Errorf(DCKError, "no data")
	}

	for len(data) > 0 {
		if len(data) < DCKNumChunks+1 {
			return nil, curated.Errorf(DCKError, "truncated block header")
		}

		blk := DCKBlock{Bank: DCKBank(data[0])}
		switch blk.Bank {
		case DockBank, ExromBank, HomeBank:
		default:
			return nil, curated.Errorf(DCKError, fmt.Sprintf("unknown bank (%02x)", data[0]))
		}

		for i := 0; i < DCKNumChunks; i++ {
			t := DCKChunkType(data[1+i])
			if t > ChunkRAM {
				return nil, curated.Errorf(DCKError, fmt.Sprintf("%s chunk %d: unknown chunk type (%02x)", blk.Bank, i, uint8(t)))
			}
			blk.Chunks[i].Type = t
		}
		data = data[DCKNumChunks+1:]

		for i := range blk.Chunks {
			if !blk.Chunks[i].Type.HasData() {
				continue
			}
			if len(data) < DCKChunkSize {
				return nil, curated.Errorf(DCKError, fmt.Sprintf("%s chunk %d: truncated data", blk.Bank, i))
			}
			blk.Chunks[i].Data = data[:DCKChunkSize]
			data = data[DCKChunkSize:]
		}

		dck.Blocks = append(dck.Blocks, blk)
	}

	return dck, nil
}
