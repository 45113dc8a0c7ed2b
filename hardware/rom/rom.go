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

// Package rom loads the ROM images required by a machine.
//
// Every image is validated before any image is returned. A machine being
// reset can therefore load all its images and only then alter its memory, so
// that a failed load leaves the machine as it was.
package rom

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/logger"
)

// LoadFailure is the pattern used for all errors returned by the package.
const LoadFailure = "rom: %v"

// Descriptor describes one ROM image required by a machine.
type Descriptor struct {
	Filename string
	Size     int

	// an optional image that can't be found is replaced by an image of the
	// correct size filled with 0xff
	Optional bool

	// the image is mapped as the EXROM rather than as a home ROM bank
	Exrom bool

	// the home ROM bank the image is loaded into. ignored for EXROM images
	Bank int
}

// Source implementations provide the data for a named ROM image. A missing
// image should result in an error for which errors.Is(err, fs.ErrNotExist)
// is true.
type Source interface {
	ReadROM(filename string) ([]uint8, error)
}

// Dir is a Source that reads images from a directory.
type Dir string

// ReadROM implements the Source interface.
func (d Dir) ReadROM(filename string) ([]uint8, error) {
	return os.ReadFile(filepath.Join(string(d), filename))
}

// Images is a Source of images already in memory.
type Images map[string][]uint8

// ReadROM implements the Source interface.
func (im Images) ReadROM(filename string) ([]uint8, error) {
	if d, ok := im[filename]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%s: %w", filename, fs.ErrNotExist)
}

// Load all the images described. The returned slice is in the same order as
// the descriptors.
func Load(perm logger.Permission, src Source, descs []Descriptor) ([][]uint8, error) {
	images := make([][]uint8, len(descs))

	for i, d := range descs {
		data, err := src.ReadROM(d.Filename)
		if err != nil {
			if d.Optional && errors.Is(err, fs.ErrNotExist) {
				logger.Logf(perm, "rom", "%s not found: using empty image", d.Filename)
				data = make([]uint8, d.Size)
				for j := range data {
					data[j] = 0xff
				}
				images[i] = data
				continue
			}
			return nil, curated.Errorf(LoadFailure, err)
		}

		if len(data) != d.Size {
			return nil, curated.Errorf(LoadFailure, fmt.Sprintf("%s: wrong size (%d bytes, expected %d)", d.Filename, len(data), d.Size))
		}

		images[i] = data
	}

	return images, nil
}
