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

// Package display draws the screen of the emulated machine, updating only the
// parts of the screen that change.
//
// Every write to screen memory marks one or more chunks (eight pixels of
// one display line) as "maybe dirty". The chunks are not drawn immediately.
// Instead, a cursor follows the ULA beam through the frame. When the cursor
// is moved forward with FlushThrough() every maybe dirty chunk it passes is
// compared with what was last drawn for that chunk and is plotted, via the
// Renderer interface, only if it has changed.
//
// The region between the cursor and the beam is the critical region. A write
// to a chunk that the beam has already passed must not be drawn until the
// next frame, because the ULA has already read the old value. MarkChunk()
// therefore flushes the critical region before marking such a chunk. The
// maybe dirty bit it then sets is behind the cursor and so survives until
// the cursor reaches it in the following frame.
//
// Changes to the border colour are recorded in a log with the beam position
// at which they occurred. At the end of the frame, the log is used to paint
// the border and the Renderer is told which rectangles of the screen have
// been changed.
package display
