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

package port

// RegisterFile is a plain store of bytes. It is used as the device for ranges
// that are not otherwise emulated. Every write is stored and every read
// returns the stored value.
type RegisterFile struct {
	rng  Range
	data []uint8
}

// NewRegisterFile is the preferred method of initialisation for the
// RegisterFile type. The size of the file is the size of the range's mirror.
func NewRegisterFile(rng Range) *RegisterFile {
	return &RegisterFile{
		rng:  rng,
		data: make([]uint8, int(rng.Mirror())+1),
	}
}

func (r *RegisterFile) String() string {
	return r.rng.String()
}

// Read implements the Device interface.
func (r *RegisterFile) Read(address uint16, _ bool) uint8 {
	return r.data[int(address)%len(r.data)]
}

// Write implements the Device interface.
func (r *RegisterFile) Write(address uint16, data uint8, _ bool) {
	r.data[int(address)%len(r.data)] = data
}

// Reset clears every register.
func (r *RegisterFile) Reset() {
	clear(r.data)
}
