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

// Package cartridgeloader is used to specify the cartridge data that is to be
// inserted into the dock of a Timex machine.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "carts/Flight Simulator.dck",
//	}
//
// The loaded data is parsed with ParseDCK(). A DCK image is a sequence of
// blocks. Each block starts with a nine byte header: one byte naming the
// bank the block is for and one byte for each of the eight 8K chunks of the
// bank, describing what the chunk contains. The header is followed by 8K of
// data for every chunk that has data.
package cartridgeloader
