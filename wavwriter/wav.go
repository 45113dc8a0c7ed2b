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

// Package wavwriter allows writing of the beeper output to disk as a WAV
// file. Note that audio data is buffered in memory in its entirity, and
// written to disk when Close() is called. It is therefore probably only
// suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/hardware/television/specification"
	"github.com/jetsetilly/specx/logger"
)

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 44100

const bitDepth = 16

// amplitude of each output level. the EAR output is much louder than the MIC
// output
var levels = [4]int{-0x2000, -0x1a00, 0x1a00, 0x2000}

// WavWriter implements the ula.DAC interface.
type WavWriter struct {
	perm     logger.Permission
	filename string

	// number of tstates in one second of emulated time
	clock float64

	// tstates at the start of the current frame. counted from the start of
	// the recording
	frameStart int

	level  uint8
	buffer []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type. The television specification decides the relationship between tstates
// and real time.
func NewWavWriter(perm logger.Permission, filename string, spec specification.Spec) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}

	aw := &WavWriter{
		perm:     perm,
		filename: filename,
		clock:    float64(spec.TStatesPerFrame) * float64(spec.FramesPerSecond),
		buffer:   make([]int, 0, SampleFreq),
	}

	return aw, nil
}

// fill the buffer with the current level up to the sample corresponding to
// the tstate
func (aw *WavWriter) fill(tstates int) {
	n := int(float64(aw.frameStart+tstates) * SampleFreq / aw.clock)
	v := levels[aw.level&0x03]
	for len(aw.buffer) < n {
		aw.buffer = append(aw.buffer, v)
	}
}

// SetLevel implements the ula.DAC interface.
func (aw *WavWriter) SetLevel(tstates int, level uint8) {
	aw.fill(tstates)
	aw.level = level
}

// EndFrame implements the ula.DAC interface.
func (aw *WavWriter) EndFrame(frameLength int) {
	aw.fill(frameLength)
	aw.frameStart += frameLength
}

// Samples returns the number of samples collected so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// Close writes the collected audio to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// PCM format is 1
	enc := wav.NewEncoder(f, SampleFreq, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(aw.perm, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
