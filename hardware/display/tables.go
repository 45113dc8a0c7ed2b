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

package display

import "github.com/jetsetilly/specx/hardware/television/specification"

// Layout of the screen memory. Offsets are relative to the start of the
// screen file, so the alternate screen file adds altOffset to every value.
const (
	bitmapSize = 0x1800
	attrOffset = 0x1800
	attrSize   = 0x0300
	altOffset  = 0x2000
)

var (
	// offset of the first byte of each display line
	lineStart [specification.DisplayLines]uint16

	// column and line of each bitmap byte
	xtable [bitmapSize]uint8
	ytable [bitmapSize]uint8

	// column and first line of each attribute byte
	xtable2 [attrSize]uint8
	ytable2 [attrSize]uint8
)

func init() {
	for y := 0; y < specification.DisplayLines; y++ {
		lineStart[y] = uint16(32 * ((y & 0xc0) + ((y & 0x07) << 3) + ((y & 0x38) >> 3)))
		for x := 0; x < specification.DisplayCols; x++ {
			xtable[int(lineStart[y])+x] = uint8(x)
			ytable[int(lineStart[y])+x] = uint8(y)
		}
	}

	for i := 0; i < attrSize; i++ {
		xtable2[i] = uint8(i % specification.DisplayCols)
		ytable2[i] = uint8((i / specification.DisplayCols) * 8)
	}
}

// attrAddress returns the offset of the attribute byte for the column and
// display line in the standard screen layout.
func attrAddress(col int, line int) uint16 {
	return attrOffset + uint16((line/8)*specification.DisplayCols+col)
}
