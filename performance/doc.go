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

// Package performance measures how quickly the machine emulates frames.
//
// Check() runs a machine flat out for a fixed wall-clock duration and reports
// the number of frames completed, alongside the rate the machine's
// specification expects. A profile of the run can be written at the same
// time.
//
// RunProfiler() wraps any function with the requested profilers. It places
// no limit on how long the function runs for.
//
// CalcFPS() is an aggregate measurement taken over a whole run. It is not
// intended for live frame rate display.
package performance
