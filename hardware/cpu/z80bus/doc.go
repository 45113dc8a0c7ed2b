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

// Package z80bus connects the github.com/koron-go/z80 CPU emulator to the
// machine. The CPU sees the machine through the Memory and IO types, which
// advance the machine clock on every access.
//
// Timing is approximate. Every memory and IO access is counted as four
// tstates, which is close enough for the frame to move at about the right
// speed but not enough for cycle exact effects.
//
// The Runner type drives the CPU for a number of frames. Let's assume m is an
// instance of hardware.Machine with a program at 0x8000:
//
//	r := z80bus.NewRunner(m, 0x8000)
//	m.AttachInterrupter(r)
//	err := r.Run(context.Background(), 50)
//
// Run() returns when the number of frames have been completed. If the CPU
// halts before then, the remaining frames are completed with the CPU idle.
package z80bus
