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

package specification

import "image/color"

// NumColours is the number of entries in the palette. The second half of
// the palette are the bright versions of the first half.
const NumColours = 16

// Palette is the ULA palette. Colour indexes are in GRB order as written to
// the border port: black, blue, red, magenta, green, cyan, yellow, white.
var Palette = [NumColours]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0x00, 0x00, 0xc0, 0xff},
	{0xc0, 0x00, 0x00, 0xff},
	{0xc0, 0x00, 0xc0, 0xff},
	{0x00, 0xc0, 0x00, 0xff},
	{0x00, 0xc0, 0xc0, 0xff},
	{0xc0, 0xc0, 0x00, 0xff},
	{0xc0, 0xc0, 0xc0, 0xff},
	{0x00, 0x00, 0x00, 0xff},
	{0x00, 0x00, 0xff, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0xff, 0x00, 0xff, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

// Colour returns the palette entry for the colour index. Only the lower four
// bits of the index are used.
func Colour(idx uint8) color.RGBA {
	return Palette[idx&0x0f]
}
