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

package usb

import "fmt"

// SetupPacketSize is the size of a setup packet in bytes.
const SetupPacketSize = 8

// MaxPacketSize is the maximum packet size of endpoint zero. The controller
// is a full speed device.
const MaxPacketSize = 64

// RequestDirectionIn is the bit in RequestType that indicates a device to
// host transfer.
const RequestDirectionIn = 0x80

// SetupPacket is the decoded form of the eight bytes of a setup packet.
type SetupPacket struct {
	RequestType uint8
	Request     uint8
	Value       uint16
	Index       uint16
	Length      uint16
}

// ParseSetupPacket decodes the first eight bytes of data. Returns false if
// there are fewer than eight bytes.
func ParseSetupPacket(data []byte) (SetupPacket, bool) {
	if len(data) < SetupPacketSize {
		return SetupPacket{}, false
	}
	return SetupPacket{
		RequestType: data[0],
		Request:     data[1],
		Value:       uint16(data[2]) | uint16(data[3])<<8,
		Index:       uint16(data[4]) | uint16(data[5])<<8,
		Length:      uint16(data[6]) | uint16(data[7])<<8,
	}, true
}

// Bytes returns the eight byte encoding of the setup packet.
func (s SetupPacket) Bytes() [SetupPacketSize]byte {
	return [SetupPacketSize]byte{
		s.RequestType,
		s.Request,
		byte(s.Value), byte(s.Value >> 8),
		byte(s.Index), byte(s.Index >> 8),
		byte(s.Length), byte(s.Length >> 8),
	}
}

// In returns true if the data stage is device to host.
func (s SetupPacket) In() bool {
	return s.RequestType&RequestDirectionIn == RequestDirectionIn
}

func (s SetupPacket) String() string {
	dir := "out"
	if s.In() {
		dir = "in"
	}
	return fmt.Sprintf("type=%#02x (%s) request=%#02x value=%#04x index=%#04x length=%d",
		s.RequestType, dir, s.Request, s.Value, s.Index, s.Length)
}
