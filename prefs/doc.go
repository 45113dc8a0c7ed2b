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

// Package prefs facilitates the storage of preferences on disk.
//
// Preference values are typed (Bool, Int, String) and are associated with a
// key when they are added to a Disk instance. The Disk type reads and writes
// the values to a file in a simple "key :: value" format, one entry per line.
// Entries in the file that are not added to a Disk instance are preserved
// when the file is saved, so many Disk instances can share a single file.
//
// Values can be overridden for the duration of a program run from the command
// line. See PushCommandLineStack() for details.
package prefs
