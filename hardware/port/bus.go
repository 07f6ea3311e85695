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

import (
	"fmt"

	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/debugger/dbgports"
)

// Sentinal errors returned or raised by the Bus.
const (
	UnboundRange = "port: no device attached to range (%v)"
	ReboundRange = "port: device already attached to range (%v)"
	NilDevice    = "port: cannot attach nil device to range (%v)"
)

// Device is implemented by every peripheral attached to the bus.
//
// The address is the address after mirroring has been applied. If peek or poke
// is true then the access has been made by an introspection tool and the
// device must not produce side effects.
type Device interface {
	Read(address uint16, peek bool) uint8
	Write(address uint16, data uint8, poke bool)
}

// Debugger is consulted by the Bus before every observable access.
type Debugger interface {
	PortFlags(address uint16) dbgports.Flags
	Open(reason dbgports.Reason, address uint32)
}

// LastAccess records the most recent observable access.
type LastAccess struct {
	Address uint16
	Mapped  uint16
	Range   Range
	Data    uint8
	Write   bool

	// the write was dropped because the address is frozen
	Frozen bool
}

func (a LastAccess) String() string {
	op := "read"
	if a.Write {
		op = "write"
		if a.Frozen {
			op = "write (frozen)"
		}
	}
	return fmt.Sprintf("%s %#04x (%s %#03x) = %#02x", op, a.Address, a.Range, a.Mapped, a.Data)
}

// Bus dispatches port accesses to the attached devices.
type Bus struct {
	devices [NumRanges]Device

	// the debugger may be nil
	dbg Debugger

	last LastAccess
}

// NewBus is the preferred method of initialisation for the Bus type. The
// debugger argument may be nil.
func NewBus(dbg Debugger) *Bus {
	return &Bus{dbg: dbg}
}

// Attach the device to the range. A range can only be attached once.
func (bus *Bus) Attach(rng Range, dev Device) error {
	if dev == nil {
		return curated.Errorf(NilDevice, rng)
	}
	if bus.devices[rng] != nil {
		return curated.Errorf(ReboundRange, rng)
	}
	bus.devices[rng] = dev
	return nil
}

// Device returns the device attached to the range. Returns nil if no device
// has been attached.
func (bus *Bus) Device(rng Range) Device {
	return bus.devices[rng]
}

// Validate returns an error naming the first range without a device.
func (bus *Bus) Validate() error {
	for i, d := range bus.devices {
		if d == nil {
			return curated.Errorf(UnboundRange, Range(i))
		}
	}
	return nil
}

// LastAccess returns the most recent observable access.
func (bus *Bus) LastAccess() LastAccess {
	return bus.last
}

func (bus *Bus) device(address uint16) (Device, uint16, Range) {
	mapped, rng := MapAddress(address)
	dev := bus.devices[rng]
	if dev == nil {
		panic(curated.Errorf(UnboundRange, rng))
	}
	return dev, mapped, rng
}

// Read is the observable read access made by the CPU.
func (bus *Bus) Read(address uint16) uint8 {
	if bus.dbg != nil && bus.dbg.PortFlags(address)&dbgports.Read == dbgports.Read {
		bus.dbg.Open(dbgports.PortReadWatch, uint32(address))
	}

	dev, mapped, rng := bus.device(address)
	data := dev.Read(mapped, false)
	bus.last = LastAccess{Address: address, Mapped: mapped, Range: rng, Data: data}

	return data
}

// Write is the observable write access made by the CPU. The write is dropped
// if the address is frozen by the debugger.
func (bus *Bus) Write(address uint16, data uint8) {
	dev, mapped, rng := bus.device(address)
	bus.last = LastAccess{Address: address, Mapped: mapped, Range: rng, Data: data, Write: true}

	if bus.dbg != nil {
		f := bus.dbg.PortFlags(address)
		if f&dbgports.Freeze == dbgports.Freeze {
			bus.last.Frozen = true
			return
		}
		if f&dbgports.Write == dbgports.Write {
			bus.dbg.Open(dbgports.PortWriteWatch, uint32(address))
		}
	}

	dev.Write(mapped, data, false)
}

// Peek reads the address without side effects.
func (bus *Bus) Peek(address uint16) uint8 {
	dev, mapped, _ := bus.device(address)
	return dev.Read(mapped, true)
}

// Poke writes the address without side effects.
func (bus *Bus) Poke(address uint16, data uint8) {
	dev, mapped, _ := bus.device(address)
	dev.Write(mapped, data, true)
}
