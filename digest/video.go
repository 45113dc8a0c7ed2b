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
	"fmt"

	"github.com/jetsetilly/specx/hardware/television/specification"
)

// width of the pixel buffer. every lores pixel is two hires pixels wide
const pixelsPerLine = specification.ScreenWidth * 2

// Video is an implementation of the display.Renderer interface. The pixels
// of the screen are kept as palette indexes and a hash of them all is
// computed at the end of every frame.
type Video struct {
	digest [sha1.Size]byte

	// the first sha1.Size bytes of the buffer are reserved for the previous
	// digest
	pixels []byte

	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+pixelsPerLine*specification.ScreenLines),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// FrameNum returns the number of frames that have been digested.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// Pixel returns the palette index of the hires pixel.
func (dig *Video) Pixel(x int, y int) uint8 {
	return dig.pixels[sha1.Size+y*pixelsPerLine+x]
}

func (dig *Video) plot(col int, line int, data uint16, bits int, ink uint8, paper uint8) {
	i := sha1.Size + line*pixelsPerLine + col*16
	w := 16 / bits
	for b := bits - 1; b >= 0; b-- {
		c := paper
		if data&(1<<b) != 0 {
			c = ink
		}
		for j := 0; j < w; j++ {
			dig.pixels[i] = c
			i++
		}
	}
}

// PlotChunk8 implements the display.Renderer interface.
func (dig *Video) PlotChunk8(col int, line int, data uint8, ink uint8, paper uint8) {
	dig.plot(col, line, uint16(data), 8, ink, paper)
}

// PlotChunk16 implements the display.Renderer interface.
func (dig *Video) PlotChunk16(col int, line int, data uint16, ink uint8, paper uint8) {
	dig.plot(col, line, data, 16, ink, paper)
}

// PaintArea implements the display.Renderer interface.
func (dig *Video) PaintArea(_ int, _ int, _ int, _ int) {
}

// FrameEnd implements the display.Renderer interface.
func (dig *Video) FrameEnd() {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
}
