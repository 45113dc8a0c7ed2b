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

package z80bus

import "github.com/jetsetilly/specx/hardware/memory/bus"

// TStatesPerAccess is the number of tstates each memory or IO access
// advances the machine clock by.
const TStatesPerAccess = 4

// Machine is the part of the emulated machine the CPU connects to.
type Machine interface {
	bus.CPUBus
	bus.PortBus

	// AddTStates returns true if the frame has ended. EndFrame() is called
	// in response
	AddTStates(n int) bool
	EndFrame()
}

// clock is the part of the runner that counts tstates for the adapters.
type clock interface {
	tick(n int)
	portHigh() uint8
}

// Memory implements the z80.Memory interface.
type Memory struct {
	m     Machine
	clock clock
}

// Get implements the z80.Memory interface.
func (mem *Memory) Get(addr uint16) uint8 {
	mem.clock.tick(TStatesPerAccess)
	return mem.m.ReadByte(addr)
}

// Set implements the z80.Memory interface.
func (mem *Memory) Set(addr uint16, value uint8) {
	mem.clock.tick(TStatesPerAccess)
	mem.m.WriteByte(addr, value)
}

// IO implements the z80.IO interface. The CPU only supplies the low byte of
// the port address. The high byte is taken from the B register.
type IO struct {
	m     Machine
	clock clock
}

func (io *IO) port(addr uint8) uint16 {
	return uint16(io.clock.portHigh())<<8 | uint16(addr)
}

// In implements the z80.IO interface.
func (io *IO) In(addr uint8) uint8 {
	io.clock.tick(TStatesPerAccess)
	return io.m.ReadPort(io.port(addr))
}

// Out implements the z80.IO interface.
func (io *IO) Out(addr uint8, value uint8) {
	io.clock.tick(TStatesPerAccess)
	io.m.WritePort(io.port(addr), value)
}
