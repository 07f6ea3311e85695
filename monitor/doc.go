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


// Package monitor is a line orientated command interpreter for the
// peripherals. It drives the port bus, the USB controller and the battery in
// place of the CPU and the host computer. It is useful for exploring the
// behaviour of the peripherals without running any firmware.
//
// The CPU and interrupt controller are replaced by StubCPU and InterruptLog.
// Both record what is asked of them and the monitor reports the records after
// each command.
//
// Commands are case insensitive. Numbers may be decimal or prefixed with 0x
// for hexadecimal. The HELP command lists every command.
package monitor
