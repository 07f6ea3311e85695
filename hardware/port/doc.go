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

// Package port is the I/O port bus of the eZ80 based calculator.
//
// The 16 bit port address space is divided into sixteen ranges by the top
// four bits of the address. Each range is bound to exactly one Device with the
// Attach() function. Only the low bits of the address, as defined by the
// mirror mask of the range, are passed to the device. The device therefore
// sees the same register at every mirror of the address.
//
// Accesses come in two varieties. The Read() and Write() functions are the
// accesses made by the emulated CPU and are "observable": the device may
// produce side effects and the debugger is consulted. The Peek() and Poke()
// functions resolve addresses in exactly the same way but the device is told
// to suppress side effects and the debugger is not consulted.
//
// Every range must be attached before the bus is used. An access to an
// unattached range is a construction bug and causes a panic.
package port
