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


package monitor_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/logger"
	"github.com/jetsetilly/gopher84/monitor"
	"github.com/jetsetilly/gopher84/test"
)

func newMonitor(t *testing.T) (*monitor.Monitor, *test.CompareWriter) {
	t.Helper()
	tw := &test.CompareWriter{}
	m, err := monitor.NewMonitor(nil, tw)
	test.DemandSuccess(t, err)
	return m, tw
}

// runs the command and compares the output
func expect(t *testing.T, m *monitor.Monitor, tw *test.CompareWriter, cmd string, output string) {
	t.Helper()
	tw.Clear()
	test.ExpectSuccess(t, m.Command(cmd), cmd)
	if !tw.Compare(output) {
		t.Errorf("%s: unexpected output\nwanted: %q\n   got: %q", cmd, output, tw.String())
	}
}

func TestPortAccess(t *testing.T) {
	m, tw := newMonitor(t)

	expect(t, m, tw, "WRITE 0x0005 0xa5", "write 0x0005 (Control 0x005) = 0xa5\n")
	expect(t, m, tw, "read 0x0085", "read 0x0085 (Control 0x005) = 0xa5\n")
	expect(t, m, tw, "POKE 0x4010 0x5a", "")
	expect(t, m, tw, "PEEK 0x4010", "0x4010 = 0x5a\n")
	expect(t, m, tw, "", "")
	expect(t, m, tw, "# comment", "")
}

func TestClockAndReset(t *testing.T) {
	m, tw := newMonitor(t)

	expect(t, m, tw, "WRITE 0x0001 0x03", "write 0x0001 (Control 0x001) = 0x03\nclock: 48 MHz\n")

	// same rate is not reported again
	expect(t, m, tw, "WRITE 0x0001 0x03", "write 0x0001 (Control 0x001) = 0x03\n")

	expect(t, m, tw, "PC 0x123456", "")
	expect(t, m, tw, "WRITE 0x0000 0x10", "write 0x0000 (Control 0x000) = 0x10\nreset requested (PC 0x123456)\n")
	test.ExpectEquality(t, m.CPU.Resets, 1)

	// poking does not request a reset
	expect(t, m, tw, "POKE 0x0000 0x10", "")
	test.ExpectEquality(t, m.CPU.Resets, 1)
}

func TestPrivilege(t *testing.T) {
	m, tw := newMonitor(t)

	expect(t, m, tw, "PRIV 0x400000", "0x400000: privileged\n")

	expect(t, m, tw, "POKE 0x001d 0xff", "")
	expect(t, m, tw, "POKE 0x001e 0xff", "")
	expect(t, m, tw, "POKE 0x001f 0x3f", "")
	expect(t, m, tw, "PRIV 0x400000", "0x400000: unprivileged\n")
	expect(t, m, tw, "PRIV 0x3fffff", "0x3fffff: privileged\n")

	// the protected range is privileged
	expect(t, m, tw, "PRIV 0xd1887c", "0xd1887c: privileged\n")

	err := m.Command("PRIV 0x1000000")
	test.ExpectEquality(t, curated.Is(err, monitor.InvalidArgument), true)
}

func TestWatches(t *testing.T) {
	m, tw := newMonitor(t)

	expect(t, m, tw, "LIST WATCHES", "no watches\n")
	expect(t, m, tw, "WATCH FREEZE 0x0005", "")
	expect(t, m, tw, "WATCH READ 0x0006", "")
	expect(t, m, tw, "LIST WATCHES", "0x0005 freeze\n0x0006 read\n")

	expect(t, m, tw, "WRITE 0x0005 0x11", "write (frozen) 0x0005 (Control 0x005) = 0x11\n")
	expect(t, m, tw, "PEEK 0x0005", "0x0005 = 0x00\n")
	expect(t, m, tw, "READ 0x0006", "debugger: port read watch @ 0x0006\nread 0x0006 (Control 0x006) = 0x00\n")

	expect(t, m, tw, "CLEAR WATCHES", "")
	expect(t, m, tw, "LIST WATCHES", "no watches\n")

	err := m.Command("WATCH SOMETIMES 0x0005")
	test.ExpectEquality(t, curated.Is(err, monitor.InvalidArgument), true)
	err = m.Command("LIST BREAKS")
	test.ExpectEquality(t, curated.Is(err, monitor.InvalidArgument), true)
}

func TestUSBTransfer(t *testing.T) {
	m, tw := newMonitor(t)

	expect(t, m, tw, "SETUP 0x80 0x06 0x00 0x01 0x00 0x00 0x12 0x00",
		"setup: type=0x80 (in) request=0x06 value=0x0100 index=0x0000 length=18\n"+
			"interrupt: group 0 (clear)\n")
	test.ExpectEquality(t, len(m.Interrupts.Signals), 1)

	expect(t, m, tw, "SEND 100", "queued 100 bytes\n")
	expect(t, m, tw, "IN", "in: 64 bytes, 36 remaining\ninterrupt: group 0 (clear)\n")
	expect(t, m, tw, "IN", "in: 36 bytes, 0 remaining\ninterrupt: group 0 (clear)\n")
	expect(t, m, tw, "IN", "nothing to send\n")

	err := m.Command("SEND 5")
	test.ExpectEquality(t, curated.Is(err, monitor.CommandFailed), true)

	err = m.Command("SETUP 1 2")
	test.ExpectEquality(t, curated.Is(err, monitor.CommandFailed), true)
}

func TestInterruptsEnabled(t *testing.T) {
	m, tw := newMonitor(t)

	// the global interrupt enable bit of DEVCTRL
	expect(t, m, tw, "POKE 0x3100 0x24", "")
	expect(t, m, tw, "SETUP 0x00 0x05 0x07 0x00 0x00 0x00 0x00 0x00",
		"setup: type=0x00 (out) request=0x05 value=0x0007 index=0x0000 length=0\n"+
			"interrupt: group 0 (pending)\n")
	test.ExpectSuccess(t, m.Interrupts.Pending())

	// the usb status is mirrored in the control ports
	expect(t, m, tw, "PEEK 0x000f", "0x000f = 0x82\n")
}

func TestPlug(t *testing.T) {
	m, tw := newMonitor(t)
	expect(t, m, tw, "PLUG", "interrupt: otg (clear)\ninterrupt: group 2 (clear)\n")
	expect(t, m, tw, "PLUG", "")
	expect(t, m, tw, "PEEK 0x000f", "0x000f = 0x42\n")
	expect(t, m, tw, "UNPLUG", "interrupt: otg (clear)\ninterrupt: group 2 (clear)\n")
	expect(t, m, tw, "PEEK 0x000f", "0x000f = 0x02\n")
}

func TestBattery(t *testing.T) {
	m, tw := newMonitor(t)
	expect(t, m, tw, "BATTERY 2", "battery: level 2\n")
	expect(t, m, tw, "battery discharged", "battery: discharged\n")
	expect(t, m, tw, "CHARGING ON", "")
	test.ExpectEquality(t, m.Peripherals.Control.Save().BatteryCharging, true)
	expect(t, m, tw, "CHARGING off", "")
	test.ExpectEquality(t, m.Peripherals.Control.Save().BatteryCharging, false)

	err := m.Command("BATTERY 9")
	test.ExpectEquality(t, curated.Is(err, monitor.InvalidArgument), true)
	err = m.Command("CHARGING maybe")
	test.ExpectEquality(t, curated.Is(err, monitor.InvalidArgument), true)
}

func TestSaveLoad(t *testing.T) {
	m, tw := newMonitor(t)
	pth := filepath.Join(t.TempDir(), "image")

	expect(t, m, tw, "POKE 0x0005 0x11", "")
	expect(t, m, tw, "SAVE "+pth, "")
	expect(t, m, tw, "POKE 0x0005 0x22", "")
	expect(t, m, tw, "LOAD "+pth, "")
	expect(t, m, tw, "PEEK 0x0005", "0x0005 = 0x11\n")

	err := m.Command("LOAD " + filepath.Join(t.TempDir(), "missing"))
	test.ExpectEquality(t, curated.Is(err, monitor.CommandFailed), true)
}

func TestState(t *testing.T) {
	m, tw := newMonitor(t)
	test.DemandSuccess(t, m.Command("SETUP 0x80 0x06 0x00 0x01 0x00 0x00 0x12 0x00"))
	tw.Clear()
	test.DemandSuccess(t, m.Command("STATE"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "setup received"), tw.String())
	test.ExpectSuccess(t, strings.Contains(tw.String(), "level 4"), tw.String())
}

func TestLog(t *testing.T) {
	m, tw := newMonitor(t)
	logger.Clear()
	expect(t, m, tw, "RESET", "")
	expect(t, m, tw, "LOG 1", "peripherals: reset\n")
	expect(t, m, tw, "LOG", "control: initialised control ports\nperipherals: reset\n")
}

type stubKeyer struct {
	waits int
}

func (k *stubKeyer) WaitKey() error {
	k.waits++
	return nil
}

func TestWait(t *testing.T) {
	m, tw := newMonitor(t)
	expect(t, m, tw, "WAIT", "")

	k := &stubKeyer{}
	m.SetKeyer(k)
	expect(t, m, tw, "WAIT", "press any key\n")
	test.ExpectEquality(t, k.waits, 1)
}

func TestHelp(t *testing.T) {
	m, tw := newMonitor(t)

	tw.Clear()
	test.DemandSuccess(t, m.Command("HELP"))
	l := tw.Lines()
	test.DemandEquality(t, len(l) > 1, true)
	test.ExpectEquality(t, l[0], "READ <address>")
	test.ExpectEquality(t, l[len(l)-1], "QUIT")

	expect(t, m, tw, "help peek", "Read a port without side effects\n")

	err := m.Command("HELP NOTHING")
	test.ExpectEquality(t, curated.Is(err, monitor.InvalidArgument), true)
}

func TestErrors(t *testing.T) {
	m, _ := newMonitor(t)

	err := m.Command("FOO")
	test.ExpectEquality(t, curated.Is(err, monitor.UnknownCommand), true)
	err = m.Command("READ")
	test.ExpectEquality(t, curated.Is(err, monitor.MissingArgument), true)
	err = m.Command("READ 0x10000")
	test.ExpectEquality(t, curated.Is(err, monitor.InvalidArgument), true)
	err = m.Command("WRITE 0x0005 0x100")
	test.ExpectEquality(t, curated.Is(err, monitor.InvalidArgument), true)
}

func TestRun(t *testing.T) {
	m, tw := newMonitor(t)

	input := strings.NewReader("WRITE 0x0005 0x01\nBAD\nQUIT\nREAD 0x0005\n")
	test.ExpectSuccess(t, m.Run(input, false))
	test.ExpectSuccess(t, m.Quit())
	test.ExpectSuccess(t, tw.Compare("write 0x0005 (Control 0x005) = 0x01\n* monitor: unknown command (BAD)\n"), tw.String())
}

func TestRunPrompt(t *testing.T) {
	m, tw := newMonitor(t)
	test.ExpectSuccess(t, m.Run(strings.NewReader("PEEK 0x0005\n"), true))
	test.ExpectFailure(t, m.Quit())
	test.ExpectSuccess(t, tw.Compare("> 0x0005 = 0x00\n> "), tw.String())
}
