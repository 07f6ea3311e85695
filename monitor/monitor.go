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


package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/debugger/dbgports"
	"github.com/jetsetilly/gopher84/environment"
	"github.com/jetsetilly/gopher84/hardware"
	"github.com/jetsetilly/gopher84/hardware/bitfield"
	"github.com/jetsetilly/gopher84/hardware/control"
	"github.com/jetsetilly/gopher84/logger"
)

// Sentinal errors returned by Command().
const (
	UnknownCommand  = "monitor: unknown command (%s)"
	MissingArgument = "monitor: %s: missing argument"
	InvalidArgument = "monitor: %s: invalid argument (%s)"
	CommandFailed   = "monitor: %s: %v"
)

// the number of log entries printed by the LOG command if no number is given
const defaultLogEntries = 10

// Keyer is implemented by types that can wait for a single key press. The
// Terminal type in the terminal sub-package implements this interface.
type Keyer interface {
	WaitKey() error
}

// Monitor is the command interpreter.
type Monitor struct {
	env    *environment.Environment
	output io.Writer

	CPU         *StubCPU
	Interrupts  *InterruptLog
	Debugger    *dbgports.Ports
	Peripherals *hardware.Peripherals

	// may be nil in which case the WAIT command does nothing
	keys Keyer

	quit bool

	// the state of the stubs at the start of the current command. used to
	// report what happened during the command
	signals int
	resets  int
	rate    float64
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// All output is written to the output argument.
func NewMonitor(env *environment.Environment, output io.Writer) (*Monitor, error) {
	m := &Monitor{
		env:        env,
		output:     output,
		CPU:        &StubCPU{},
		Interrupts: &InterruptLog{},
		Debugger:   dbgports.NewPorts(env),
	}

	m.Debugger.OnOpen = func(h dbgports.Hit) {
		fmt.Fprintf(m.output, "debugger: %s\n", h)
	}

	var err error
	m.Peripherals, err = hardware.NewPeripherals(env, m.CPU, m.Interrupts, m.Debugger)
	if err != nil {
		return nil, curated.Errorf("monitor: %v", err)
	}
	m.CPU.ClockRate = m.Peripherals.Control.ClockRate()

	return m, nil
}

// SetKeyer sets the implementation used by the WAIT command.
func (m *Monitor) SetKeyer(k Keyer) {
	m.keys = k
}

// Quit returns true if the QUIT command has been issued.
func (m *Monitor) Quit() bool {
	return m.quit
}

// Run commands read from input until the QUIT command or the end of input.
// Command errors are printed and do not stop the loop. A prompt is printed
// before each command if prompt is true.
func (m *Monitor) Run(input io.Reader, prompt bool) error {
	scn := bufio.NewScanner(input)
	for !m.quit {
		if prompt {
			fmt.Fprint(m.output, "> ")
		}
		if !scn.Scan() {
			break // for loop
		}
		if err := m.Command(scn.Text()); err != nil {
			fmt.Fprintf(m.output, "* %v\n", err)
		}
	}

	if err := scn.Err(); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	return nil
}

// Command runs a single command. Empty lines and lines beginning with # are
// ignored.
func (m *Monitor) Command(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
		return nil
	}

	m.signals = len(m.Interrupts.Signals)
	m.resets = m.CPU.Resets
	m.rate = m.CPU.ClockRate

	err := m.execute(strings.ToUpper(tokens[0]), tokens[1:])
	m.report()

	return err
}

// report what the stubs were asked to do by the last command.
func (m *Monitor) report() {
	for _, s := range m.Interrupts.Signals[m.signals:] {
		fmt.Fprintf(m.output, "interrupt: %s\n", s)
	}
	if m.CPU.Resets > m.resets {
		fmt.Fprintf(m.output, "reset requested (PC %#06x)\n", m.CPU.PC)
	}
	if m.CPU.ClockRate != m.rate {
		fmt.Fprintf(m.output, "clock: %d MHz\n", int(m.CPU.ClockRate/1e6))
	}
}

func (m *Monitor) execute(cmd string, args []string) error {
	bus := m.Peripherals.Bus

	switch cmd {
	case cmdRead:
		a, err := number(cmd, args, 0, 16)
		if err != nil {
			return err
		}
		bus.Read(uint16(a))
		fmt.Fprintln(m.output, bus.LastAccess())

	case cmdWrite:
		a, err := number(cmd, args, 0, 16)
		if err != nil {
			return err
		}
		v, err := number(cmd, args, 1, 8)
		if err != nil {
			return err
		}
		bus.Write(uint16(a), uint8(v))
		fmt.Fprintln(m.output, bus.LastAccess())

	case cmdPeek:
		a, err := number(cmd, args, 0, 16)
		if err != nil {
			return err
		}
		fmt.Fprintf(m.output, "%#04x = %#02x\n", a, bus.Peek(uint16(a)))

	case cmdPoke:
		a, err := number(cmd, args, 0, 16)
		if err != nil {
			return err
		}
		v, err := number(cmd, args, 1, 8)
		if err != nil {
			return err
		}
		bus.Poke(uint16(a), uint8(v))

	case cmdPriv:
		pc, err := address24(cmd, args, 0)
		if err != nil {
			return err
		}
		if m.Peripherals.Control.IsUnprivileged(pc) {
			fmt.Fprintf(m.output, "%#06x: unprivileged\n", pc)
		} else {
			fmt.Fprintf(m.output, "%#06x: privileged\n", pc)
		}

	case cmdPC:
		pc, err := address24(cmd, args, 0)
		if err != nil {
			return err
		}
		m.CPU.PC = pc

	case cmdWatch:
		kind, err := argument(cmd, args, 0)
		if err != nil {
			return err
		}
		var f dbgports.Flags
		switch strings.ToUpper(kind) {
		case "READ":
			f = dbgports.Read
		case "WRITE":
			f = dbgports.Write
		case "FREEZE":
			f = dbgports.Freeze
		default:
			return curated.Errorf(InvalidArgument, cmd, kind)
		}
		a, err := number(cmd, args, 1, 16)
		if err != nil {
			return err
		}
		m.Debugger.Set(uint16(a), f)

	case cmdClear, cmdList:
		what, err := argument(cmd, args, 0)
		if err != nil {
			return err
		}
		if strings.ToUpper(what) != "WATCHES" {
			return curated.Errorf(InvalidArgument, cmd, what)
		}
		if cmd == cmdClear {
			m.Debugger.ClearAll()
			break // switch
		}
		l := m.Debugger.List()
		if len(l) == 0 {
			fmt.Fprintln(m.output, "no watches")
		}
		for _, w := range l {
			fmt.Fprintln(m.output, w)
		}

	case cmdSetup:
		packet := make([]byte, 0, len(args))
		for i := range args {
			b, err := number(cmd, args, i, 8)
			if err != nil {
				return err
			}
			packet = append(packet, byte(b))
		}
		if !m.Peripherals.USB.DeliverSetup(packet) {
			return curated.Errorf(CommandFailed, cmd, fmt.Sprintf("setup packet too short (%d bytes)", len(packet)))
		}
		fmt.Fprintf(m.output, "setup: %s\n", m.Peripherals.USB.Setup())

	case cmdSend:
		n, err := number(cmd, args, 0, 16)
		if err != nil {
			return err
		}
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i)
		}
		if !m.Peripherals.USB.QueueSendPacket(data) {
			return curated.Errorf(CommandFailed, cmd, fmt.Sprintf("cannot queue data in %s stage", m.Peripherals.USB.Stage()))
		}
		fmt.Fprintf(m.output, "queued %d bytes\n", n)

	case cmdIn:
		p := m.Peripherals.USB.ServeInPacket()
		if p == nil {
			fmt.Fprintln(m.output, "nothing to send")
			break // switch
		}
		fmt.Fprintf(m.output, "in: %d bytes, %d remaining\n", len(p), m.Peripherals.USB.PendingLength())

	case cmdPlug:
		m.Peripherals.USB.Plug(true)

	case cmdUnplug:
		m.Peripherals.USB.Plug(false)

	case cmdBattery:
		s, err := argument(cmd, args, 0)
		if err != nil {
			return err
		}
		l, err := control.ParseBatteryLevel(s)
		if err != nil {
			return curated.Errorf(InvalidArgument, cmd, s)
		}
		m.Peripherals.Control.SetBatteryLevel(l)
		fmt.Fprintf(m.output, "battery: %s\n", l)

	case cmdCharging:
		s, err := argument(cmd, args, 0)
		if err != nil {
			return err
		}
		switch strings.ToUpper(s) {
		case "ON":
			m.Peripherals.Control.SetCharging(true)
		case "OFF":
			m.Peripherals.Control.SetCharging(false)
		default:
			return curated.Errorf(InvalidArgument, cmd, s)
		}

	case cmdSave:
		f, err := argument(cmd, args, 0)
		if err != nil {
			return err
		}
		if err := m.Peripherals.SaveImage(f); err != nil {
			return curated.Errorf(CommandFailed, cmd, err)
		}

	case cmdLoad:
		f, err := argument(cmd, args, 0)
		if err != nil {
			return err
		}
		if err := m.Peripherals.LoadImage(f); err != nil {
			return curated.Errorf(CommandFailed, cmd, err)
		}

	case cmdState:
		m.state()

	case cmdLog:
		n := defaultLogEntries
		if len(args) > 0 {
			v, err := number(cmd, args, 0, 16)
			if err != nil {
				return err
			}
			n = int(v)
		}
		logger.Tail(m.output, n)

	case cmdWait:
		if m.keys == nil {
			break // switch
		}
		fmt.Fprintln(m.output, "press any key")
		if err := m.keys.WaitKey(); err != nil {
			return curated.Errorf(CommandFailed, cmd, err)
		}

	case cmdReset:
		m.Peripherals.Reset()

	case cmdHelp:
		if len(args) == 0 {
			for _, t := range commandTemplate {
				fmt.Fprintln(m.output, t)
			}
			break // switch
		}
		s := strings.ToUpper(args[0])
		h, ok := help[s]
		if !ok {
			return curated.Errorf(InvalidArgument, cmd, args[0])
		}
		fmt.Fprintln(m.output, h)

	case cmdQuit:
		m.quit = true

	default:
		return curated.Errorf(UnknownCommand, cmd)
	}

	return nil
}

// summary of the peripheral state printed by the STATE command
type summary struct {
	Battery      string
	BatteryState string
	Charging     bool
	ClockMHz     int
	ShipMode     bool
	Privileged   string
	Protected    string

	USBStage   string
	USBPlugged bool
	USBPending int
	USBSetup   string

	InterruptPending bool
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

func (m *Monitor) state() {
	ctl := m.Peripherals.Control.Save()
	u := m.Peripherals.USB

	s := summary{
		Battery:          ctl.BatterySet.String(),
		BatteryState:     ctl.BatteryRead.String(),
		Charging:         ctl.BatteryCharging,
		ClockMHz:         int(m.Peripherals.Control.ClockRate() / 1e6),
		ShipMode:         ctl.ShipMode,
		Privileged:       fmt.Sprintf("%#06x", ctl.Privileged),
		Protected:        fmt.Sprintf("%#06x to %#06x", ctl.ProtectedStart, ctl.ProtectedEnd),
		USBStage:         u.Stage().String(),
		USBPlugged:       u.Plugged(),
		USBPending:       u.PendingLength(),
		USBSetup:         u.Setup().String(),
		InterruptPending: m.Interrupts.Pending(),
	}

	dumpConfig.Fdump(m.output, s)
}

// argument returns the numbered argument or a MissingArgument error.
func argument(cmd string, args []string, i int) (string, error) {
	if i >= len(args) {
		return "", curated.Errorf(MissingArgument, cmd)
	}
	return args[i], nil
}

// number parses the numbered argument as an unsigned number of the given bit
// size. decimal and 0x prefixed hexadecimal are accepted.
func number(cmd string, args []string, i int, bits int) (uint64, error) {
	s, err := argument(cmd, args, i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, curated.Errorf(InvalidArgument, cmd, s)
	}
	return v, nil
}

func address24(cmd string, args []string, i int) (uint32, error) {
	v, err := number(cmd, args, i, 32)
	if err != nil {
		return 0, err
	}
	if v > bitfield.Mask24 {
		return 0, curated.Errorf(InvalidArgument, cmd, args[i])
	}
	return uint32(v), nil
}
