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

import "fmt"

// Range is one of the sixteen divisions of the port address space.
type Range int

// List of valid Range values. The value of the Range is the top four bits of
// the addresses it covers.
const (
	Control Range = iota
	Flash
	SHA256
	USB
	LCD
	Interrupt
	Watchdog
	Timers
	RTC
	Protected
	Keypad
	Backlight
	Cxxx
	SPI
	UART
	Fxxx

	NumRanges = 16
)

func (r Range) String() string {
	switch r {
	case Control:
		return "Control"
	case Flash:
		return "Flash"
	case SHA256:
		return "SHA256"
	case USB:
		return "USB"
	case LCD:
		return "LCD"
	case Interrupt:
		return "Interrupt"
	case Watchdog:
		return "Watchdog"
	case Timers:
		return "Timers"
	case RTC:
		return "RTC"
	case Protected:
		return "Protected"
	case Keypad:
		return "Keypad"
	case Backlight:
		return "Backlight"
	case Cxxx:
		return "Cxxx"
	case SPI:
		return "SPI"
	case UART:
		return "UART"
	case Fxxx:
		return "Fxxx"
	}
	return fmt.Sprintf("range %d", int(r))
}

// Origin returns the first address in the range.
func (r Range) Origin() uint16 {
	return uint16(r) << 12
}

// Mirror returns the mirror mask for the range.
func (r Range) Mirror() uint16 {
	return mirrors[r&0xf]
}

// the mirror mask for each range. only the bits in the mask are significant
// to the device attached to the range.
var mirrors = [NumRanges]uint16{
	0x07f, 0x0ff, 0x0ff, 0x1ff,
	0xfff, 0x0ff, 0x01f, 0x0ff,
	0x07f, 0xfff, 0x07f, 0xfff,
	0x0ff, 0x07f, 0x07f, 0xfff,
}

// MapAddress returns the Range for the address and the address as seen by the
// device attached to that range.
func MapAddress(address uint16) (uint16, Range) {
	rng := Range(address >> 12)
	return address & mirrors[rng], rng
}
