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

// TStates implements the display.Clock and ula.Clock interfaces.
func (m *Machine) TStates() int {
	return m.tstates
}

// AddTStates advances the clock. Returns true if the frame has ended, in
// which case EndFrame() should be called.
func (m *Machine) AddTStates(n int) bool {
	m.tstates += n
	return m.tstates >= m.Spec.TStatesPerFrame
}

// EndFrame completes the current frame and starts the next one. Any tstates
// past the end of the frame are carried into the next frame. The frame
// interrupt is raised unless it is disabled by the SCLD.
func (m *Machine) EndFrame() {
	m.Display.EndFrame()
	m.ULA.EndFrame(m.Spec.TStatesPerFrame)

	m.tstates -= m.Spec.TStatesPerFrame
	if m.tstates < 0 {
		m.tstates = 0
	}

	if m.interruptEnabled() && m.interrupter != nil {
		m.interrupter.Interrupt()
	}
}

func (m *Machine) interruptEnabled() bool {
	return m.SCLD == nil || !m.SCLD.DEC().IntDisable()
}

// InterruptActive returns true if the interrupt line is currently held.
func (m *Machine) InterruptActive() bool {
	return m.interruptEnabled() && m.tstates < m.Spec.InterruptLength
}

// RetriggerInterrupt implements the scld.Interrupter interface. Enabling the
// interrupt while the interrupt line would be held raises the interrupt.
func (m *Machine) RetriggerInterrupt() {
	if m.InterruptActive() && m.interrupter != nil {
		m.interrupter.Interrupt()
	}
}
