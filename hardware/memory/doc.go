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

// Package memory implements the memory of the Spectrum family of machines.
//
// All physical memory (ROM, RAM and the Timex DOCK and EXROM cartridge
// chunks) is allocated from a pool.Pool. Which pages the CPU sees is decided
// by a memorymap.Map. The Memory type doesn't decide what the map should be.
// That is the job of the machine variant (see the machines package), which
// computes a new map whenever a paging register changes and installs it with
// SetMap().
//
// Writes to the page holding the current screen are reported to a
// ScreenWriter so that the display can track which parts of the screen have
// changed.
package memory
