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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a test error and carry on. The Demand functions
// stop the test immediately. Use Demand when later parts of a test rely on the
// value being correct, for example testing the length of a slice before
// indexing it.
//
// ExpectSuccess() and ExpectFailure() interpret values according to their
// type:
//
//	bool  -> success is true
//	error -> success is nil
//	nil   -> success
//
// The nil type counts as success because of how errors work in Go: a nil
// error means no error.
//
// Tags are optional arguments that identify the test case in failure
// messages. They are printed in front of the message, separated by spaces.
package test
