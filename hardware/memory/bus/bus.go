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

// Package bus defines the ways the memory and port systems can be accessed.
//
// The CPU sees memory through the CPUBus and peripherals through the PortBus.
// Both of these have timing consequences and affect the display. The
// DebuggerBus is for the exclusive use of debuggers and tools. Peek() never
// has side effects. Poke() changes memory without advancing the clock but
// still notifies the display, so that a poke to screen memory is seen.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU.
type CPUBus interface {
	ReadByte(address uint16) uint8
	WriteByte(address uint16, data uint8)
}

// PortBus defines the operations for the I/O port system when accessed from
// the CPU. The full 16 bit address is used because peripherals decode
// different parts of it.
type PortBus interface {
	ReadPort(port uint16) uint8
	WritePort(port uint16, data uint8)
}

// DebuggerBus defines the meta-operations for memory. These are operations
// outside of the normal operation of the machine.
type DebuggerBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}
