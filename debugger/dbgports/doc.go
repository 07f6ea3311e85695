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

// Package dbgports is the debugger's view of the I/O port address space.
//
// The Ports type holds a watch/freeze flag for every one of the 65536 port
// addresses. The port bus consults the flags before an observable read or
// write: a read watch or a write watch causes the debugger to be opened and a
// freeze causes the write to be dropped. Flags are indexed by the address as
// issued by the CPU, before any mirroring is applied by the bus.
//
// The debugger is "opened" by calling Open() with a Reason. The Ports type
// does not implement a debugger user interface. It records the most recent
// hit and forwards it to an optional callback.
package dbgports
