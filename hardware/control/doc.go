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

// Package control emulates the control ports of the calculator. These are the
// ports in the 0x0xxx range of the port address space.
//
// The control ports set the CPU clock rate, report the state of the battery,
// trigger resets and define the privileged and protected areas of memory.
//
// Battery level is not reported directly. Instead the operating system
// performs a handshake, writing a fixed sequence of values and reading the
// battery status port after each one. The handshake stops early at the level
// the battery is set to. The sequence is modelled by the BatteryState type and
// its transition table.
//
// A program counter is "unprivileged" if it lies above the privileged
// boundary and outside of the protected range. The protected range is not
// normalised: if the start of the range is above the end of the range then no
// address is inside it.
package control
