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

// Package hardware is the base package for the emulated machine. The Machine
// type owns every emulated component and is the only type a CPU emulation
// needs to know about.
//
// The CPU is not part of the package. A CPU emulation accesses memory through
// ReadByte() and WriteByte() and the peripherals through ReadPort() and
// WritePort(). It tells the machine how much time has passed with
// AddTStates() and is told of the frame interrupt through the Interrupter
// interface. See the z80bus package for an example.
//
// Time is measured in tstates since the start of the frame. When a frame's
// worth of tstates has passed, EndFrame() must be called. EndFrame() completes
// the screen, starts the next frame and raises the frame interrupt.
package hardware
