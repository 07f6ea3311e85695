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


package hardware

import (
	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/debugger/dbgports"
	"github.com/jetsetilly/gopher84/environment"
	"github.com/jetsetilly/gopher84/hardware/control"
	"github.com/jetsetilly/gopher84/hardware/port"
	"github.com/jetsetilly/gopher84/hardware/usb"
	"github.com/jetsetilly/gopher84/logger"
)

// Peripherals is the collection of devices on the port bus.
type Peripherals struct {
	env *environment.Environment

	Bus     *port.Bus
	Control *control.Control
	USB     *usb.USB

	// ranges that are not emulated in any detail are served by a register
	// file. the entries for the Control and USB ranges are nil
	Files [port.NumRanges]*port.RegisterFile
}

// NewPeripherals creates every device and attaches them to the port bus.
// The dbg argument may be nil.
func NewPeripherals(env *environment.Environment, cpu control.CPU, ic usb.InterruptController, dbg *dbgports.Ports) (*Peripherals, error) {
	var err error

	p := &Peripherals{env: env}

	p.USB, err = usb.NewUSB(env, ic)
	if err != nil {
		return nil, curated.Errorf("peripherals: %v", err)
	}

	// a nil *dbgports.Ports must not be stored in the interface fields
	var ctlDbg control.Debugger
	var busDbg port.Debugger
	if dbg != nil {
		ctlDbg = dbg
		busDbg = dbg
	}

	p.Control, err = control.NewControl(env, cpu, p.USB, ctlDbg)
	if err != nil {
		return nil, curated.Errorf("peripherals: %v", err)
	}

	// the range table is only built once every device exists
	p.Bus = port.NewBus(busDbg)
	for rng := port.Range(0); rng < port.NumRanges; rng++ {
		var dev port.Device
		switch rng {
		case port.Control:
			dev = p.Control
		case port.USB:
			dev = p.USB
		default:
			p.Files[rng] = port.NewRegisterFile(rng)
			dev = p.Files[rng]
		}
		if err := p.Bus.Attach(rng, dev); err != nil {
			return nil, curated.Errorf("peripherals: %v", err)
		}
	}

	if err := p.Bus.Validate(); err != nil {
		return nil, curated.Errorf("peripherals: %v", err)
	}

	return p, nil
}

// Reset every device.
func (p *Peripherals) Reset() {
	p.Control.Reset()
	p.USB.Reset()
	for _, f := range p.Files {
		if f != nil {
			f.Reset()
		}
	}
	logger.Log(p.env, "peripherals", "reset")
}
