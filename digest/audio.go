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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// the number of level changes to collect before updating the digest
const audioBufferLength = 1024

// Audio is an implementation of the ula.DAC interface. Every level change,
// and the time it occurred, is included in the hash.
type Audio struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]byte, sha1.Size, sha1.Size+audioBufferLength*5)
	return dig
}

// Hash implements the Digest interface. Level changes that have not yet been
// included in the digest are flushed first.
func (dig *Audio) Hash() string {
	dig.flush()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.buffer = dig.buffer[:sha1.Size]
}

// SetLevel implements the ula.DAC interface.
func (dig *Audio) SetLevel(tstates int, level uint8) {
	dig.buffer = binary.LittleEndian.AppendUint32(dig.buffer, uint32(tstates))
	dig.buffer = append(dig.buffer, level)
	if len(dig.buffer) >= cap(dig.buffer) {
		dig.flush()
	}
}

// EndFrame implements the ula.DAC interface. The end of the frame is
// included in the digest so that the timing of level changes is significant.
func (dig *Audio) EndFrame(frameLength int) {
	dig.SetLevel(frameLength, 0xff)
}

func (dig *Audio) flush() {
	if len(dig.buffer) == sha1.Size {
		return
	}
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer)
	dig.buffer = dig.buffer[:sha1.Size]
}
