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

// Package bitfield contains helpers for registers that are wider than the
// eight bit data bus. A wide register is held as a single integer and the
// byte-wide views of it are extracted and injected here.
package bitfield

// Mask24 is the mask for the 24 bit address registers of the eZ80.
const Mask24 = 0xffffff

// Read8 returns byte n of v. Byte zero is the least significant byte.
func Read8(v uint32, n int) uint8 {
	return uint8(v >> (uint(n) << 3))
}

// Write8 returns v with byte n replaced by data. Byte zero is the least
// significant byte.
func Write8(v uint32, n int, data uint8) uint32 {
	shift := uint(n) << 3
	return v&^(0xff<<shift) | uint32(data)<<shift
}

// Read8At is like Read8 but for a register that is accessed through
// consecutive addresses starting at base.
func Read8At(v uint32, base uint8, address uint8) uint8 {
	return Read8(v, int(address-base))
}

// Write8At is like Write8 but for a register that is accessed through
// consecutive addresses starting at base.
func Write8At(v uint32, base uint8, address uint8, data uint8) uint32 {
	return Write8(v, int(address-base), data)
}
