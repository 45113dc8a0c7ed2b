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

package ports_test

import (
	"testing"

	"github.com/jetsetilly/specx/hardware/ports"
	"github.com/jetsetilly/specx/test"
)

func TestDispatch(t *testing.T) {
	p := ports.NewPorts(0xee)

	var ula, dec uint8
	p.Register(ports.Handler{
		Name: "ULA", Mask: 0x0001, Value: 0x0000,
		Read:  func(_ uint16) uint8 { return 0xbf },
		Write: func(_ uint16, data uint8) { ula = data },
	})
	p.Register(ports.Handler{
		Name: "DEC", Mask: 0x00ff, Value: 0x00ff,
		Read:  func(_ uint16) uint8 { return 0xf7 },
		Write: func(_ uint16, data uint8) { dec = data },
	})

	p.WritePort(0x00fe, 0x03)
	test.ExpectEquality(t, ula, 0x03)
	test.ExpectEquality(t, dec, 0x00)

	p.WritePort(0x12ff, 0x06)
	test.ExpectEquality(t, ula, 0x03)
	test.ExpectEquality(t, dec, 0x06)

	test.ExpectEquality(t, p.ReadPort(0x00fe), 0xbf)
	test.ExpectEquality(t, p.ReadPort(0x00ff), 0xf7)
	test.ExpectEquality(t, p.ReadPort(0x00f5), 0xee)

	// a second handler on the ULA port. reads are combined
	p.Register(ports.Handler{
		Name: "overlap", Mask: 0x00ff, Value: 0x00fe,
		Read: func(_ uint16) uint8 { return 0xfe },
	})
	test.ExpectEquality(t, p.ReadPort(0x00fe), 0xbe)

	p.Clear()
	test.ExpectEquality(t, p.ReadPort(0x00fe), 0xee)
}
