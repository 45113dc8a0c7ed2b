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

package snapshot

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/jetsetilly/specx/curated"
)

// field numbers of the Snapshot message
const (
	fieldMachine    protowire.Number = 1
	fieldTStates    protowire.Number = 2
	field7FFD       protowire.Number = 3
	fieldHSR        protowire.Number = 4
	fieldDEC        protowire.Number = 5
	fieldULA        protowire.Number = 6
	fieldRAM        protowire.Number = 7
	fieldDock       protowire.Number = 8
	fieldExrom      protowire.Number = 9
	fieldDockActive protowire.Number = 10
	fieldFlashPhase protowire.Number = 11
	fieldFlashCount protowire.Number = 12
)

// field numbers of the embedded bank message, used for RAM banks and
// cartridge chunks
const (
	fieldBankIndex    protowire.Number = 1
	fieldBankData     protowire.Number = 2
	fieldBankWritable protowire.Number = 3
)

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBank(b []byte, num protowire.Number, index int, data []uint8, writable bool) []byte {
	var m []byte
	m = appendVarint(m, fieldBankIndex, uint64(index))
	m = protowire.AppendTag(m, fieldBankData, protowire.BytesType)
	m = protowire.AppendBytes(m, data)
	m = appendVarint(m, fieldBankWritable, protowire.EncodeBool(writable))

	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m)
}

// Marshal encodes the snapshot.
func Marshal(s *Snapshot) []byte {
	var b []byte

	b = protowire.AppendTag(b, fieldMachine, protowire.BytesType)
	b = protowire.AppendString(b, s.Machine)
	b = appendVarint(b, fieldTStates, uint64(s.TStates))
	b = appendVarint(b, field7FFD, uint64(s.Last7FFD))
	b = appendVarint(b, fieldHSR, uint64(s.HSR))
	b = appendVarint(b, fieldDEC, uint64(s.DEC))
	b = appendVarint(b, fieldULA, uint64(s.ULA))

	for _, k := range s.Banks() {
		b = appendBank(b, fieldRAM, k, s.RAM[k], true)
	}
	for i, c := range s.Dock {
		if c != nil {
			b = appendBank(b, fieldDock, i, c.Data, c.Writable)
		}
	}
	for i, c := range s.Exrom {
		if c != nil {
			b = appendBank(b, fieldExrom, i, c.Data, c.Writable)
		}
	}

	b = appendVarint(b, fieldDockActive, protowire.EncodeBool(s.DockActive))
	b = appendVarint(b, fieldFlashPhase, protowire.EncodeBool(s.FlashPhase))
	b = appendVarint(b, fieldFlashCount, uint64(s.FlashFrames))

	return b
}

type bank struct {
	index    int
	data     []uint8
	writable bool
}

func consumeBank(b []byte) (bank, error) {
	var bk bank
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return bk, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldBankIndex && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return bk, protowire.ParseError(n)
			}
			bk.index = int(v)
			b = b[n:]
		case num == fieldBankData && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return bk, protowire.ParseError(n)
			}
			bk.data = append([]uint8{}, v...)
			b = b[n:]
		case num == fieldBankWritable && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return bk, protowire.ParseError(n)
			}
			bk.writable = protowire.DecodeBool(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return bk, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return bk, nil
}

// Unmarshal decodes a snapshot encoded with Marshal().
func Unmarshal(b []byte) (*Snapshot, error) {
	s := NewSnapshot("")

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, curated.Errorf(DecodeError, protowire.ParseError(n))
		}
		b = b[n:]

		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, curated.Errorf(DecodeError, protowire.ParseError(n))
			}
			b = b[n:]

			switch num {
			case fieldTStates:
				s.TStates = int(v)
			case field7FFD:
				s.Last7FFD = uint8(v)
			case fieldHSR:
				s.HSR = uint8(v)
			case fieldDEC:
				s.DEC = uint8(v)
			case fieldULA:
				s.ULA = uint8(v)
			case fieldDockActive:
				s.DockActive = protowire.DecodeBool(v)
			case fieldFlashPhase:
				s.FlashPhase = protowire.DecodeBool(v)
			case fieldFlashCount:
				s.FlashFrames = int(v)
			}

		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, curated.Errorf(DecodeError, protowire.ParseError(n))
			}
			b = b[n:]

			if num == fieldMachine {
				s.Machine = string(v)
				continue
			}

			if num != fieldRAM && num != fieldDock && num != fieldExrom {
				continue
			}

			bk, err := consumeBank(v)
			if err != nil {
				return nil, curated.Errorf(DecodeError, err)
			}

			switch num {
			case fieldRAM:
				s.RAM[bk.index] = bk.data
			case fieldDock, fieldExrom:
				if bk.index < 0 || bk.index >= NumChunks {
					return nil, curated.Errorf(DecodeError, fmt.Sprintf("chunk number out of range (%d)", bk.index))
				}
				c := &Chunk{Data: bk.data, Writable: bk.writable}
				if num == fieldDock {
					s.Dock[bk.index] = c
				} else {
					s.Exrom[bk.index] = c
				}
			}

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, curated.Errorf(DecodeError, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	return s, nil
}
