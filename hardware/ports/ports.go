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

// Package ports dispatches CPU port reads and writes to the peripherals of
// the machine.
//
// Peripherals only decode some of the address lines. A Handler is attached
// to every port for which the bits selected by Mask equal Value. Writes are
// sent to every attached handler. Reads from every attached handler are
// combined with a logical AND, as if the peripherals were pulling the data
// lines low. If no handler is attached the unattached value is returned.
package ports

import (
	"fmt"
	"strings"
)

// Handler describes how a peripheral is attached to the ports.
type Handler struct {
	Name  string
	Mask  uint16
	Value uint16

	// either function can be nil if the peripheral doesn't respond to that
	// kind of access
	Read  func(port uint16) uint8
	Write func(port uint16, data uint8)
}

func (h Handler) attached(port uint16) bool {
	return port&h.Mask == h.Value
}

// Ports is the collection of attached handlers.
type Ports struct {
	handlers   []Handler
	unattached uint8
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(unattached uint8) *Ports {
	return &Ports{
		unattached: unattached,
	}
}

// Register a new handler.
func (p *Ports) Register(h Handler) {
	p.handlers = append(p.handlers, h)
}

// Clear all handlers.
func (p *Ports) Clear() {
	p.handlers = p.handlers[:0]
}

// ReadPort implements the bus.PortBus interface.
func (p *Ports) ReadPort(port uint16) uint8 {
	v := uint8(0xff)
	attached := false
	for _, h := range p.handlers {
		if h.Read != nil && h.attached(port) {
			v &= h.Read(port)
			attached = true
		}
	}
	if !attached {
		return p.unattached
	}
	return v
}

// WritePort implements the bus.PortBus interface.
func (p *Ports) WritePort(port uint16, data uint8) {
	for _, h := range p.handlers {
		if h.Write != nil && h.attached(port) {
			h.Write(port, data)
		}
	}
}

func (p *Ports) String() string {
	s := strings.Builder{}
	for _, h := range p.handlers {
		s.WriteString(fmt.Sprintf("%s: mask=%04x value=%04x\n", h.Name, h.Mask, h.Value))
	}
	return s.String()
}
