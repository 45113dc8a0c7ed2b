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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given with NewArgs() and then processed with Parse(). Flags
// must be added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	frames := md.AddInt("frames", 50, "number of frames to run")
//	md.AddSubModes("RUN", "PERFORMANCE", "DCK")
//	p, err := md.Parse()
//
// The first sub-mode is the default and is selected if the first argument
// after the flags is not one of the listed sub-modes. Sub-mode comparisons
// are case insensitive and Mode() always returns the sub-mode in upper case.
//
// After the mode has been decided NewMode() prepares for the flags of that
// mode:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		machine := md.AddString("machine", "48", "machine variant")
//		p, err := md.Parse()
//		...
//	}
//
// Parse() returns ParseHelp if the user asked for help, in which case the
// help message has already been written to Output. Non-flag arguments that
// remain after parsing can be retrieved with RemainingArgs() or GetArg().
package modalflag
