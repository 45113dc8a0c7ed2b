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

// Package resources prepares paths for the files the program keeps between
// runs: the preferences file and, by default, the ROM directory.
//
// For builds with the "release" build tag the base path is in the user's
// configuration directory. eg. on Linux:
//
//	/home/user/.config/specx/
//
// For all other builds the base path is in the current working directory:
//
//	.specx
package resources
