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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/specx/environment"
	"github.com/jetsetilly/specx/hardware/display"
	"github.com/jetsetilly/specx/hardware/machines"
	"github.com/jetsetilly/specx/hardware/memory"
	"github.com/jetsetilly/specx/hardware/memory/memorymap"
	"github.com/jetsetilly/specx/hardware/memory/pool"
	"github.com/jetsetilly/specx/hardware/ports"
	"github.com/jetsetilly/specx/hardware/rom"
	"github.com/jetsetilly/specx/hardware/scld"
	"github.com/jetsetilly/specx/hardware/television/specification"
	"github.com/jetsetilly/specx/hardware/ula"
	"github.com/jetsetilly/specx/logger"
)

// Interrupter implementations are told when the frame interrupt is raised.
// Usually the CPU.
type Interrupter interface {
	Interrupt()
}

// Machine is the main container for the emulated components of the machine.
type Machine struct {
	env *environment.Environment

	Variant machines.Variant
	Spec    specification.Spec

	Mem     *memory.Memory
	Display *display.Display
	Ports   *ports.Ports
	ULA     *ula.ULA

	// nil if the machine has no SCLD
	SCLD *scld.SCLD

	interrupter Interrupter

	// tstates since the start of the frame
	tstates int

	// last value written to the 128K paging port
	last7FFD uint8

	// a cartridge is inserted in the dock
	dockActive bool
}

// NewMachine creates a new machine of the type named by id. The ROMs are
// loaded from the src.
func NewMachine(env *environment.Environment, id string, src rom.Source) (*Machine, error) {
	v, err := machines.NewVariant(id)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		env:     env,
		Variant: v,
		Spec:    v.Spec(),
	}

	m.Mem = memory.NewMemory(v.HasSCLD())
	v.Allocate(m.Mem)

	m.Display = display.NewDisplay(env, env.Prefs, m.Spec, m, m.Mem)
	m.Mem.AttachScreen(m.Display)

	m.ULA = ula.NewULA(m.Display, m, nil)

	m.Ports = ports.NewPorts(v.UnattachedPort())
	m.Ports.Register(m.ULA.Handler())

	if v.HasPaging() {
		mask, value := v.PagingPort()
		m.Ports.Register(ports.Handler{
			Name:  "7FFD",
			Mask:  mask,
			Value: value,
			Write: func(_ uint16, data uint8) { m.write7FFD(data) },
		})
	}

	if v.HasSCLD() {
		m.SCLD = scld.NewSCLD(env, m.Display, m, m)
		m.Ports.Register(ports.Handler{
			Name:  "DEC",
			Mask:  0x00ff,
			Value: 0x00ff,
			Read:  func(_ uint16) uint8 { return uint8(m.SCLD.DEC()) },
			Write: func(_ uint16, data uint8) { m.SCLD.WriteDEC(data) },
		})
		if v.HasHSR() {
			m.Ports.Register(ports.Handler{
				Name:  "HSR",
				Mask:  0x00ff,
				Value: 0x00f4,
				Read:  func(_ uint16) uint8 { return uint8(m.SCLD.HSR()) },
				Write: func(_ uint16, data uint8) { m.SCLD.WriteHSR(data) },
			})
		}
	}

	err = m.Reset(src)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s: %s", m.Variant.ID(), m.Mem.MappedBanks())
}

// AttachInterrupter sets the collaborator that is told of the frame
// interrupt.
func (m *Machine) AttachInterrupter(i Interrupter) {
	m.interrupter = i
}

// AttachDAC sets the collaborator that is told of changes in the beeper
// level.
func (m *Machine) AttachDAC(dac ula.DAC) {
	m.ULA.AttachDAC(dac)
}

// Reset the machine. The ROMs are loaded from the src. If any ROM fails to
// load the machine is left unchanged and an error with the rom.LoadFailure
// pattern is returned.
func (m *Machine) Reset(src rom.Source) error {
	images, err := rom.Load(m.env, src, m.Variant.ROMs())
	if err != nil {
		return err
	}

	for i, d := range m.Variant.ROMs() {
		if d.Exrom {
			for c := 0; c < memorymap.NumChunks; c++ {
				if err := m.Mem.InstallBank(pool.Exrom, c, images[i], false); err != nil {
					return err
				}
			}
			continue
		}
		if err := m.Mem.LoadROM(d.Bank, images[i]); err != nil {
			return err
		}
	}

	for _, b := range m.Mem.RAM {
		for _, h := range b {
			clear(m.Mem.Pool.Page(h).Data)
		}
	}

	m.tstates = 0
	m.last7FFD = 0
	if m.SCLD != nil {
		m.SCLD.Reset()
	}
	m.Display.Reset()
	m.ULA.Plumb(0)
	m.RemapMemory()

	logger.Logf(m.env, "machine", "reset %s", m.Variant.ID())

	return nil
}

// registers returns the current state of the paging registers.
func (m *Machine) registers() machines.Registers {
	reg := machines.Registers{
		Bank7FFD: m.last7FFD,
	}
	if m.SCLD != nil {
		reg.HSR = m.SCLD.HSR()
		reg.DEC = m.SCLD.DEC()
	}
	return reg
}

// RemapMemory implements the scld.Remapper interface. The memory map is
// recomputed from the current paging registers.
func (m *Machine) RemapMemory() {
	reg := m.registers()

	// the part of the frame already scanned by the beam must be drawn from
	// the old screen bank
	screen := m.Variant.ScreenBank(reg)
	if screen != m.Mem.ScreenBank {
		m.Display.Flush()
		m.Mem.ScreenBank = screen
		m.Display.RefreshAll()
	}

	m.Mem.SetMap(m.Variant.MemoryMap(m.Mem, reg))
}

func (m *Machine) write7FFD(data uint8) {
	if m.last7FFD&machines.Paging7FFDLock == machines.Paging7FFDLock {
		return
	}
	m.last7FFD = data
	m.RemapMemory()
}

// MappedBanks returns a summary of the current memory map.
func (m *Machine) MappedBanks() string {
	return m.Mem.MappedBanks()
}

// ReadByte implements the bus.CPUBus interface.
func (m *Machine) ReadByte(address uint16) uint8 {
	return m.Mem.ReadByte(address)
}

// WriteByte implements the bus.CPUBus interface.
func (m *Machine) WriteByte(address uint16, data uint8) {
	m.Mem.WriteByte(address, data)
}

// Peek implements the bus.DebuggerBus interface.
func (m *Machine) Peek(address uint16) uint8 {
	return m.Mem.Peek(address)
}

// Poke implements the bus.DebuggerBus interface.
func (m *Machine) Poke(address uint16, value uint8) {
	m.Mem.Poke(address, value)
}

// ReadPort implements the bus.PortBus interface.
func (m *Machine) ReadPort(port uint16) uint8 {
	return m.Ports.ReadPort(port)
}

// WritePort implements the bus.PortBus interface.
func (m *Machine) WritePort(port uint16, data uint8) {
	m.Ports.WritePort(port, data)
}

// Contended returns true if the address is in contended memory.
func (m *Machine) Contended(address uint16) bool {
	return m.Mem.Contended(address)
}
