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

package resources

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/specx/curated"
)

// JoinPath prepends the supplied path with the OS/build specific base path.
//
// All directories leading up to the final element are created. The final
// element is not touched.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	base, err := basePath()
	if err != nil {
		return "", curated.Errorf("resources: %v", err)
	}

	p = filepath.Join(base, p)

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", curated.Errorf("resources: %v", err)
	}

	return p, nil
}
