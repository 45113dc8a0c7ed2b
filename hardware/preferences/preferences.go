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

// Package preferences holds the user preferences for the emulated hardware.
package preferences

import (
	"github.com/jetsetilly/specx/prefs"
	"github.com/jetsetilly/specx/resources"
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// machine variant to create when no variant is specified
	Machine prefs.String

	// directory in which ROM images are searched for
	ROMDir prefs.String

	// number of frames between changes of the flash phase
	FlashFrames prefs.Int

	// redraw the entire screen on every frame. the dirty tracking is still
	// performed but the renderer is asked to repaint everything
	RedrawAll prefs.Bool

	// echo log entries to stdout as they are made
	EchoLog prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path argument indicates that the default
// preferences file should be used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		var err error
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.machine", &p.Machine)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.romDir", &p.ROMDir)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.display.flashFrames", &p.FlashFrames)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.display.redrawAll", &p.RedrawAll)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.echoLog", &p.EchoLog)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// default number of frames between flash phase changes
const defaultFlashFrames = 16

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Machine.Set("48")
	p.ROMDir.Set("roms")
	p.FlashFrames.Set(defaultFlashFrames)
	p.RedrawAll.Set(false)
	p.EchoLog.Set(false)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
