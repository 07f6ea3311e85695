// This file is part of Gopher84.
//
// Gopher84 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher84 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher84.  If not, see <https://www.gnu.org/licenses/>.


// Package hardware ties together the peripheral devices of the calculator. The
// Peripherals type constructs each device, attaches them to the port bus and
// offers reset and snapshot functions for the whole collection.
//
// The Image type is the saveable form of a snapshot. It can be written to and
// read from a byte slice with MarshalBinary() and UnmarshalBinary(), or to and
// from a file with SaveImage() and LoadImage().
package hardware
