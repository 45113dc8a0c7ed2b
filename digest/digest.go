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

// Package digest contains implementations of the display.Renderer and
// ula.DAC interfaces that produce a cryptographic hash of the output. The
// hash can then be used to compare the output of subsequent emulation runs,
// or of two emulations that should be in the same state.
//
// Digests are chained. The hash of each frame includes the hash of the
// previous frame, so two digests are equal only if every frame was equal.
// ResetDigest() can be used to start a new chain.
package digest

// Digest implementations compute a cryptographic hash.
type Digest interface {
	Hash() string
	ResetDigest()
}
