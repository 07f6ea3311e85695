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

package port_test

import (
	"testing"

	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/debugger/dbgports"
	"github.com/jetsetilly/gopher84/hardware/port"
	"github.com/jetsetilly/gopher84/test"
)

// probe is a device that records how it was accessed
type probe struct {
	port.RegisterFile
	lastAddress uint16
	observable  int
	quiet       int
}

func (p *probe) Read(address uint16, peek bool) uint8 {
	p.lastAddress = address
	if peek {
		p.quiet++
	} else {
		p.observable++
	}
	return p.RegisterFile.Read(address, peek)
}

func (p *probe) Write(address uint16, data uint8, poke bool) {
	p.lastAddress = address
	if poke {
		p.quiet++
	} else {
		p.observable++
	}
	p.RegisterFile.Write(address, data, poke)
}

func newBus(t *testing.T, dbg port.Debugger) (*port.Bus, *probe) {
	t.Helper()

	bus := port.NewBus(dbg)
	prb := &probe{RegisterFile: *port.NewRegisterFile(port.USB)}
	for r := port.Range(0); r < port.NumRanges; r++ {
		var err error
		if r == port.USB {
			err = bus.Attach(r, prb)
		} else {
			err = bus.Attach(r, port.NewRegisterFile(r))
		}
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, bus.Validate())

	return bus, prb
}

func TestMapAddress(t *testing.T) {
	a, r := port.MapAddress(0x0081)
	test.ExpectEquality(t, r, port.Control)
	test.ExpectEquality(t, a, 0x0001)

	a, r = port.MapAddress(0x3fff)
	test.ExpectEquality(t, r, port.USB)
	test.ExpectEquality(t, a, 0x01ff)

	a, r = port.MapAddress(0x6020)
	test.ExpectEquality(t, r, port.Watchdog)
	test.ExpectEquality(t, a, 0x0000)

	a, r = port.MapAddress(0xffff)
	test.ExpectEquality(t, r, port.Fxxx)
	test.ExpectEquality(t, a, 0x0fff)

	test.ExpectEquality(t, port.Keypad.String(), "Keypad")
	test.ExpectEquality(t, port.Keypad.Origin(), 0xa000)
	test.ExpectEquality(t, port.LCD.Mirror(), 0xfff)
}

func TestPassThrough(t *testing.T) {
	bus, _ := newBus(t, nil)

	for _, a := range []uint16{0x0010, 0x1020, 0x3100, 0x4abc, 0x9123, 0xb0ff, 0xf800} {
		bus.Write(a, uint8(a))
		test.ExpectEquality(t, bus.Read(a), uint8(a), a)
	}
}

func TestMirroring(t *testing.T) {
	bus, prb := newBus(t, nil)

	bus.Write(0x3010, 0xaa)
	test.ExpectEquality(t, prb.lastAddress, 0x0010)

	// bits outside of the USB mirror mask are ignored
	test.ExpectEquality(t, bus.Read(0x3210), 0xaa)
	test.ExpectEquality(t, bus.Read(0x3e10), 0xaa)
	test.ExpectEquality(t, prb.lastAddress, 0x0010)

	// control range mirrors every 128 bytes
	bus.Write(0x0005, 0x55)
	for a := uint16(0x0005); a < 0x1000; a += 0x80 {
		test.ExpectEquality(t, bus.Read(a), 0x55, a)
	}

	// watchdog range is very small
	bus.Write(0x6001, 0x11)
	test.ExpectEquality(t, bus.Read(0x6fe1), 0x11)
}

func TestPeekPoke(t *testing.T) {
	bus, prb := newBus(t, nil)

	bus.Write(0x3020, 0x01)
	test.ExpectEquality(t, prb.observable, 1)

	// peeks do not change what is read next
	for i := 0; i < 10; i++ {
		test.ExpectEquality(t, bus.Peek(0x3020), 0x01)
	}
	test.ExpectEquality(t, prb.quiet, 10)
	test.ExpectEquality(t, prb.observable, 1)
	test.ExpectEquality(t, bus.Read(0x3020), 0x01)

	// pokes resolve addresses in the same way as a write
	bus.Poke(0x3e21, 0x02)
	test.ExpectEquality(t, prb.lastAddress, 0x0021)
	test.ExpectEquality(t, bus.Read(0x3021), 0x02)

	// peek and poke do not update the last access
	last := bus.LastAccess()
	bus.Peek(0x3000)
	bus.Poke(0x3000, 0xff)
	test.ExpectEquality(t, bus.LastAccess(), last)
}

func TestUnbound(t *testing.T) {
	bus := port.NewBus(nil)
	test.ExpectSuccess(t, bus.Attach(port.Control, port.NewRegisterFile(port.Control)))

	err := bus.Validate()
	test.ExpectSuccess(t, curated.Is(err, port.UnboundRange))
	test.ExpectEquality(t, err.Error(), "port: no device attached to range (Flash)")

	test.ExpectSuccess(t, curated.Is(bus.Attach(port.Control, port.NewRegisterFile(port.Control)), port.ReboundRange))
	test.ExpectSuccess(t, curated.Is(bus.Attach(port.Flash, nil), port.NilDevice))

	defer func() {
		r := recover()
		err, ok := r.(error)
		test.DemandSuccess(t, ok)
		test.ExpectSuccess(t, curated.Is(err, port.UnboundRange))
	}()
	bus.Read(0x1000)
	t.Errorf("read from unbound range did not panic")
}

func TestDebuggerHooks(t *testing.T) {
	dbg := dbgports.NewPorts(nil)
	bus, prb := newBus(t, dbg)

	// read watch
	dbg.Set(0x3010, dbgports.Read)
	bus.Read(0x3010)
	hit, n := dbg.LastHit()
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, hit.Reason, dbgports.PortReadWatch)
	test.ExpectEquality(t, hit.Address, 0x3010)

	// flags are indexed by the unmirrored address
	bus.Read(0x3210)
	_, n = dbg.LastHit()
	test.ExpectEquality(t, n, 1)

	// peek does not consult the debugger
	bus.Peek(0x3010)
	_, n = dbg.LastHit()
	test.ExpectEquality(t, n, 1)

	// write watch. the write still happens
	dbg.Set(0x3011, dbgports.Write)
	bus.Write(0x3011, 0x42)
	hit, n = dbg.LastHit()
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, hit.Reason, dbgports.PortWriteWatch)
	test.ExpectEquality(t, bus.Peek(0x3011), 0x42)

	// freeze drops the write entirely and does not open the debugger even
	// when a write watch is also set
	dbg.Set(0x3011, dbgports.Freeze)
	observable := prb.observable
	bus.Write(0x3011, 0x99)
	_, n = dbg.LastHit()
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, prb.observable, observable)
	test.ExpectEquality(t, bus.Peek(0x3011), 0x42)
	test.ExpectSuccess(t, bus.LastAccess().Frozen)

	// poke ignores the freeze
	bus.Poke(0x3011, 0x99)
	test.ExpectEquality(t, bus.Peek(0x3011), 0x99)
}

func TestLastAccess(t *testing.T) {
	bus, _ := newBus(t, nil)

	bus.Write(0x0081, 0x13)
	test.ExpectEquality(t, bus.LastAccess().String(), "write 0x0081 (Control 0x001) = 0x13")

	bus.Read(0x3fff)
	l := bus.LastAccess()
	test.ExpectEquality(t, l.Range, port.USB)
	test.ExpectEquality(t, l.Mapped, 0x01ff)
	test.ExpectFailure(t, l.Write)
}
