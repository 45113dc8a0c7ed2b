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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/specx/hardware/snapshot"
	"github.com/jetsetilly/specx/test"
)

// workspace creates a temporary directory containing a 48K ROM and a short
// program. the preferences directory is created in the same place
func workspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	romImage := make([]uint8, 0x4000)
	for i := range romImage {
		romImage[i] = 0x76
	}
	for _, fn := range []string{"48.rom", "128-0.rom", "128-1.rom"} {
		test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, fn), romImage, 0o644))
	}

	program := []uint8{
		0x3e, 0x04, // LD A, 0x04
		0xd3, 0xfe, // OUT (0xfe), A
		0x21, 0x00, 0x58, // LD HL, 0x5800
		0x36, 0x57, // LD (HL), 0x57
		0x76, // HALT
	}
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "prog.bin"), program, 0o644))

	return dir
}

func TestRunMode(t *testing.T) {
	dir := workspace(t)

	var out strings.Builder
	v := launch(context.Background(), &out, []string{
		"run", "-romdir", dir, "-machine", "48", "-frames", "3",
		"-png", "screen.png", "-wav", "beeper.wav", "-save", "state.snap", "-digest",
		"prog.bin",
	})
	test.ExpectEquality(t, v, 0, out.String())
	test.ExpectSuccess(t, strings.Contains(out.String(), "48: ROM0 ROM0 RAM5 RAM5 RAM2 RAM2 RAM0 RAM0 (frame 3)"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "video digest: "))

	for _, fn := range []string{"screen.png", "beeper.wav", "state.snap"} {
		_, err := os.Stat(filepath.Join(dir, fn))
		test.ExpectSuccess(t, err, fn)
	}

	data, err := os.ReadFile(filepath.Join(dir, "state.snap"))
	test.DemandSuccess(t, err)
	s, err := snapshot.Unmarshal(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.ULA&0x07, 0x04)
	test.ExpectEquality(t, s.RAM[5][0x1800], 0x57)

	// restore the snapshot without a program. the CPU starts in the ROM,
	// which halts immediately
	out.Reset()
	v = launch(context.Background(), &out, []string{
		"run", "-romdir", dir, "-machine", "48", "-frames", "1", "-load", "state.snap",
	})
	test.ExpectEquality(t, v, 0, out.String())

	// snapshot is for a different machine
	out.Reset()
	v = launch(context.Background(), &out, []string{
		"run", "-romdir", dir, "-machine", "128", "-load", "state.snap",
	})
	test.ExpectEquality(t, v, exitModeError)
	test.ExpectSuccess(t, strings.Contains(out.String(), "snapshot is for a 48 machine"))
}

func TestMissingROM(t *testing.T) {
	dir := workspace(t)

	var out strings.Builder
	v := launch(context.Background(), &out, []string{"-romdir", dir, "-machine", "SE"})
	test.ExpectEquality(t, v, exitModeError)
	test.ExpectSuccess(t, strings.Contains(out.String(), "se-0.rom"))
}

func TestDCKMode(t *testing.T) {
	dir := workspace(t)

	img := []uint8{0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}
	img = append(img, make([]uint8, 0x2000)...)
	fn := filepath.Join(dir, "cart.dck")
	test.DemandSuccess(t, os.WriteFile(fn, img, 0o644))

	var out strings.Builder
	v := launch(context.Background(), &out, []string{"dck", fn})
	test.ExpectEquality(t, v, 0, out.String())
	test.ExpectSuccess(t, strings.Contains(out.String(), "DOCK: ROM - - - - - - ram"))

	out.Reset()
	v = launch(context.Background(), &out, []string{"dck"})
	test.ExpectEquality(t, v, exitModeError)
}

func TestParseFailures(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(context.Background(), &out, []string{"-nosuchflag"}), exitModeError)

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), &out, []string{"-help"}), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "available sub-modes: RUN, PERFORMANCE, DCK, VERSION"))
}

func TestVersionMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch(context.Background(), &out, []string{"version", "-revision"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Specx "))
	test.ExpectSuccess(t, strings.Contains(out.String(), "revision: "))
}
