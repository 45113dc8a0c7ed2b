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

// Package curated wraps the plain Go error type so that errors raised by the
// emulation can be recognised by the pattern that created them.
//
// Errors are created with Errorf(), which takes a pattern and values in the
// same way as fmt.Errorf(). The pattern is remembered and can be tested for
// with Is() and Has(). Packages that raise errors callers are expected to
// act on export the pattern as a string constant. For example, the rom
// package exports:
//
//	const LoadFailure = "rom: %v"
//
// and the machine reset code checks for it like this:
//
//	err := m.Reset(roms)
//	if curated.Has(err, rom.LoadFailure) {
//		// machine is unchanged. report and carry on
//	}
//
// Is() only matches the outermost pattern. Has() searches the whole chain of
// curated errors that were passed as values to Errorf().
//
// Error chains are normalised when printed. Parts of the chain are separated
// by ": " and adjacent duplicate parts are removed. This means a package can
// wrap an error with its own prefix without worrying whether the error
// already carries that prefix:
//
//	machine: machine: rom: 48.rom: wrong size
//
// is printed as
//
//	machine: rom: 48.rom: wrong size
package curated
