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

package rom_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/hardware/rom"
	"github.com/jetsetilly/specx/logger"
	"github.com/jetsetilly/specx/test"
)

var descs = []rom.Descriptor{
	{Filename: "home.rom", Size: 0x4000},
	{Filename: "ex.rom", Size: 0x2000, Optional: true, Exrom: true},
}

func TestLoad(t *testing.T) {
	src := rom.Images{
		"home.rom": make([]uint8, 0x4000),
	}

	images, err := rom.Load(logger.Allow, src, descs)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(images), 2)
	test.ExpectEquality(t, len(images[1]), 0x2000)
	test.ExpectEquality(t, images[1][0x1fff], 0xff)

	// optional image of the wrong size is still an error
	src["ex.rom"] = make([]uint8, 100)
	_, err = rom.Load(logger.Allow, src, descs)
	test.ExpectSuccess(t, curated.Is(err, rom.LoadFailure))
}

func TestLoadFailure(t *testing.T) {
	_, err := rom.Load(logger.Allow, rom.Images{}, descs)
	test.ExpectSuccess(t, curated.Is(err, rom.LoadFailure))

	src := rom.Images{
		"home.rom": make([]uint8, 0x3fff),
	}
	_, err = rom.Load(logger.Allow, src, descs)
	test.ExpectSuccess(t, curated.Is(err, rom.LoadFailure))
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "home.rom"), make([]uint8, 0x4000), 0o644)
	test.DemandSuccess(t, err)

	images, err := rom.Load(logger.Allow, rom.Dir(dir), descs)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(images[0]), 0x4000)
}
