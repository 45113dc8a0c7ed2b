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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/specx/digest"
	"github.com/jetsetilly/specx/test"
)

func TestVideo(t *testing.T) {
	a := digest.NewVideo()
	b := digest.NewVideo()

	a.PlotChunk8(4, 24, 0x80, 7, 0)
	a.FrameEnd()
	b.FrameEnd()
	test.ExpectInequality(t, a.Hash(), b.Hash())

	test.ExpectEquality(t, a.Pixel(64, 24), 7)
	test.ExpectEquality(t, a.Pixel(65, 24), 7)
	test.ExpectEquality(t, a.Pixel(66, 24), 0)

	// same pixels but a different chain
	b.PlotChunk8(4, 24, 0x80, 7, 0)
	b.FrameEnd()
	a.FrameEnd()
	test.ExpectInequality(t, a.Hash(), b.Hash())

	// reset the chain
	a.ResetDigest()
	b.ResetDigest()
	a.FrameEnd()
	b.FrameEnd()
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.FrameNum(), 3)

	// hires chunks are one pixel per bit
	a.PlotChunk16(4, 24, 0x4000, 1, 2)
	test.ExpectEquality(t, a.Pixel(64, 24), 2)
	test.ExpectEquality(t, a.Pixel(65, 24), 1)
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	test.ExpectEquality(t, a.Hash(), b.Hash())

	a.SetLevel(100, 2)
	b.SetLevel(101, 2)
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	b.ResetDigest()
	a.SetLevel(100, 2)
	b.SetLevel(100, 2)
	test.ExpectEquality(t, a.Hash(), b.Hash())
}
