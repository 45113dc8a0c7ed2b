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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/specx/hardware/television/specification"
	"github.com/jetsetilly/specx/logger"
	"github.com/jetsetilly/specx/test"
	"github.com/jetsetilly/specx/wavwriter"
)

func TestWavWriter(t *testing.T) {
	_, err := wavwriter.NewWavWriter(logger.Allow, "", specification.Spec48)
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "beeper.wav")
	aw, err := wavwriter.NewWavWriter(logger.Allow, fn, specification.Spec48)
	test.DemandSuccess(t, err)

	// one second of emulated time with a level change half way through each
	// frame
	spec := specification.Spec48
	frames := int(spec.FramesPerSecond + 0.5)
	for i := 0; i < frames; i++ {
		aw.SetLevel(spec.TStatesPerFrame/2, 0x02)
		aw.SetLevel(spec.TStatesPerFrame-1, 0x00)
		aw.EndFrame(spec.TStatesPerFrame)
	}

	// allow for rounding of the frame rate
	n := aw.Samples()
	test.ExpectSuccess(t, n > wavwriter.SampleFreq-1000 && n < wavwriter.SampleFreq+1000)

	test.DemandSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), n)
	test.ExpectEquality(t, int(dec.SampleRate), wavwriter.SampleFreq)

	// first half of the first frame is at the low level, the second half is
	// at the EAR level
	test.ExpectInequality(t, buf.Data[0], buf.Data[n/frames*3/4])
}
