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
	"fmt"

	"github.com/jetsetilly/gopher84/hardware/usb"
)

// StubCPU implements the control.CPU interface. It records the requests made
// by the control ports.
type StubCPU struct {
	PC        uint32
	Resets    int
	ClockRate float64
}

// ProgramCounter implements the control.CPU interface.
func (cpu *StubCPU) ProgramCounter() uint32 {
	return cpu.PC
}

// RequestReset implements the control.CPU interface.
func (cpu *StubCPU) RequestReset() {
	cpu.Resets++
}

// SetClockRate implements the control.CPU interface.
func (cpu *StubCPU) SetClockRate(hz float64) {
	cpu.ClockRate = hz
}

// Signal is a single call to InterruptLog.Signal().
type Signal struct {
	Line    usb.Line
	Pending bool
}

func (s Signal) String() string {
	if s.Pending {
		return fmt.Sprintf("%s (pending)", s.Line)
	}
	return fmt.Sprintf("%s (clear)", s.Line)
}

// InterruptLog implements the usb.InterruptController interface. Every signal
// is recorded.
type InterruptLog struct {
	Signals []Signal
}

// Signal implements the usb.InterruptController interface.
func (l *InterruptLog) Signal(line usb.Line, pending bool) {
	l.Signals = append(l.Signals, Signal{Line: line, Pending: pending})
}

// Pending returns the state of the most recent signal.
func (l *InterruptLog) Pending() bool {
	if len(l.Signals) == 0 {
		return false
	}
	return l.Signals[len(l.Signals)-1].Pending
}
