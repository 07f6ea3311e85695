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

package control

import (
	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/debugger/dbgports"
	"github.com/jetsetilly/gopher84/environment"
	"github.com/jetsetilly/gopher84/hardware/bitfield"
	"github.com/jetsetilly/gopher84/logger"
)

// CPU is the part of the CPU that the control ports affect.
type CPU interface {
	ProgramCounter() uint32
	RequestReset()
	SetClockRate(hz float64)
}

// Debugger is consulted whenever the control ports request a reset. The
// debugger is optional.
type Debugger interface {
	ResetOpensDebugger() bool
	Open(reason dbgports.Reason, address uint32)
}

// USBStatus is the summary of the USB controller that is mirrored in port
// 0x0f.
type USBStatus interface {
	Status() uint8
}

// the value of the protected start and end registers after initialisation
const initialProtected = 0xd1887c

// the clock rates selected by the low two bits of the speed port
var clockRates = [4]float64{6e6, 12e6, 24e6, 48e6}

// State is the entire state of the control ports. It is a fixed size
// structure and can be stored verbatim.
type State struct {
	// backing store for ports without special handling
	Ports [256]uint8

	CPUSpeed uint8

	BatteryRead     BatteryState
	BatterySet      BatteryLevel
	BatteryCharging bool

	// 24 bit addresses
	Privileged     uint32
	ProtectedStart uint32
	ProtectedEnd   uint32
	StackLimit     uint32

	// latched protection violations. writing to port 0x3e clears bits
	ProtectionStatus uint8

	// the calculator has been turned off by writing 0xd4 to port 0x09
	ShipMode bool
}

// Control emulates the control ports.
type Control struct {
	env *environment.Environment
	cpu CPU
	usb USBStatus

	// the debugger may be nil
	dbg Debugger

	state State
}

// NewControl is the preferred method of initialisation for the Control type.
// The debugger argument may be nil.
func NewControl(env *environment.Environment, cpu CPU, usb USBStatus, dbg Debugger) (*Control, error) {
	if cpu == nil {
		return nil, curated.Errorf("control: no CPU")
	}
	if usb == nil {
		return nil, curated.Errorf("control: no USB status")
	}

	ctl := &Control{
		env: env,
		cpu: cpu,
		usb: usb,
		dbg: dbg,
	}
	ctl.Reset()

	return ctl, nil
}

// Reset the control ports to the initial state. The battery level is taken
// from the preferences.
func (ctl *Control) Reset() {
	ctl.state = State{
		BatterySet:     Level4,
		Privileged:     bitfield.Mask24,
		ProtectedStart: initialProtected,
		ProtectedEnd:   initialProtected,
	}
	ctl.state.Ports[0x0f] = 0x02

	if ctl.env != nil && ctl.env.Prefs != nil {
		ctl.state.BatterySet = BatteryLevelFromPreference(ctl.env.Prefs.Battery.Get().(int))
	}

	logger.Log(ctl.env, "control", "initialised control ports")
}

// Save returns a copy of the control state.
func (ctl *Control) Save() State {
	return ctl.state
}

// Restore the control state. The state is copied verbatim.
func (ctl *Control) Restore(s State) {
	ctl.state = s
}

func (ctl *Control) deviceType() uint8 {
	if ctl.env == nil || ctl.env.Prefs == nil {
		return 0
	}
	return uint8(ctl.env.Prefs.Device.Get().(int))
}

// Read implements the port.Device interface.
func (ctl *Control) Read(address uint16, _ bool) uint8 {
	idx := uint8(address)

	switch idx {
	case 0x01:
		return ctl.state.CPUSpeed
	case 0x02:
		return uint8(ctl.state.BatteryRead)
	case 0x03:
		return ctl.deviceType()
	case 0x0b:
		var charging uint8
		if ctl.state.BatteryCharging {
			charging = 0x02
		}
		return ctl.state.Ports[idx] | charging
	case 0x0f:
		return ctl.state.Ports[idx] | ctl.usb.Status()
	case 0x1d, 0x1e, 0x1f:
		return bitfield.Read8At(ctl.state.Privileged, 0x1d, idx)
	case 0x20, 0x21, 0x22:
		return bitfield.Read8At(ctl.state.ProtectedStart, 0x20, idx)
	case 0x23, 0x24, 0x25:
		return bitfield.Read8At(ctl.state.ProtectedEnd, 0x23, idx)
	case 0x28:
		return ctl.state.Ports[idx] | 0x08
	case 0x3a, 0x3b, 0x3c:
		return bitfield.Read8At(ctl.state.StackLimit, 0x3a, idx)
	case 0x3d:
		return ctl.state.ProtectionStatus
	}

	return ctl.state.Ports[idx]
}

// Write implements the port.Device interface.
func (ctl *Control) Write(address uint16, data uint8, poke bool) {
	idx := uint8(address)
	observable := !poke

	switch idx {
	case 0x00:
		ctl.state.Ports[idx] = data
		if data&0x10 == 0x10 {
			ctl.requestReset(observable, "writing to bit 4 of port 0")
		}
		ctl.battery(evHandshake, data)

	case 0x01:
		ctl.state.CPUSpeed = data & 0x13
		if observable {
			rate := clockRates[ctl.state.CPUSpeed&0x03]
			ctl.cpu.SetClockRate(rate)
			logger.Logf(ctl.env, "control", "CPU clock rate set to: %d MHz", int(rate/1e6))
		}

	case 0x06:
		ctl.state.Ports[idx] = data & 0x07

	case 0x07:
		ctl.battery(evPowerMode, data)

	case 0x09:
		ctl.battery(evProbe, data)
		ctl.state.Ports[idx] = data
		if data == 0xd4 {
			ctl.state.ShipMode = true
			ctl.state.Ports[0x00] |= 0x40
			ctl.requestReset(observable, "entering sleep mode")
		}

	case 0x0a:
		ctl.battery(evAck, data)
		ctl.state.Ports[idx] = data

	case 0x0b, 0x0c:
		ctl.battery(evAbort, data)

	case 0x0d:
		ctl.state.Ports[idx] = (data&0x0f)<<4 | data&0x0f

	case 0x0f:
		ctl.state.Ports[idx] = data & 0x03

	case 0x1d, 0x1e, 0x1f:
		ctl.state.Privileged = bitfield.Write8At(ctl.state.Privileged, 0x1d, idx, data)
	case 0x20, 0x21, 0x22:
		ctl.state.ProtectedStart = bitfield.Write8At(ctl.state.ProtectedStart, 0x20, idx, data)
	case 0x23, 0x24, 0x25:
		ctl.state.ProtectedEnd = bitfield.Write8At(ctl.state.ProtectedEnd, 0x23, idx, data)

	case 0x28:
		ctl.state.Ports[idx] = data & 0xf7

	case 0x3a, 0x3b, 0x3c:
		ctl.state.StackLimit = bitfield.Write8At(ctl.state.StackLimit, 0x3a, idx, data)

	case 0x3e:
		ctl.state.ProtectionStatus &^= data

	default:
		ctl.state.Ports[idx] = data
	}
}

func (ctl *Control) battery(ev batteryEvent, data uint8) {
	ctl.state.BatteryRead = ctl.state.BatteryRead.transition(ev, data, ctl.state.BatterySet)
}

// requestReset asks the CPU for a reset and opens the debugger if it has been
// configured to do so. nothing happens if the access is not observable.
func (ctl *Control) requestReset(observable bool, cause string) {
	if !observable {
		return
	}

	pc := ctl.cpu.ProgramCounter()
	logger.Logf(ctl.env, "control", "reset caused by %s. PC: %#06x", cause, pc)
	ctl.cpu.RequestReset()

	if ctl.dbg != nil && ctl.dbg.ResetOpensDebugger() {
		ctl.dbg.Open(dbgports.User, pc)
	}
}

// IsUnprivileged returns true if the program counter is above the privileged
// boundary and outside of the protected range.
func (ctl *Control) IsUnprivileged(pc uint32) bool {
	return pc > ctl.state.Privileged &&
		(pc < ctl.state.ProtectedStart || pc > ctl.state.ProtectedEnd)
}

// UnprivilegedCode returns true if the CPU is currently executing
// unprivileged code.
func (ctl *Control) UnprivilegedCode() bool {
	return ctl.IsUnprivileged(ctl.cpu.ProgramCounter())
}

// FlagProtectionViolation latches the bits in the protection status register.
// The bits can only be cleared by the CPU writing to port 0x3e.
func (ctl *Control) FlagProtectionViolation(bits uint8) {
	ctl.state.ProtectionStatus |= bits
}

// SetBatteryLevel sets the level reported by the battery handshake.
func (ctl *Control) SetBatteryLevel(level BatteryLevel) {
	ctl.state.BatterySet = level
}

// BatteryLevel returns the level reported by the battery handshake.
func (ctl *Control) BatteryLevel() BatteryLevel {
	return ctl.state.BatterySet
}

// BatteryState returns the current position in the battery handshake.
func (ctl *Control) BatteryState() BatteryState {
	return ctl.state.BatteryRead
}

// SetCharging sets whether the battery is charging.
func (ctl *Control) SetCharging(charging bool) {
	ctl.state.BatteryCharging = charging
}

// ShipMode returns true if the calculator has been turned off.
func (ctl *Control) ShipMode() bool {
	return ctl.state.ShipMode
}

// FlashUnlocked returns true if port 0x06 allows writes to flash.
func (ctl *Control) FlashUnlocked() bool {
	return ctl.state.Ports[0x06]&0x04 == 0x04
}

// ClockRate returns the clock rate selected by the speed port.
func (ctl *Control) ClockRate() float64 {
	return clockRates[ctl.state.CPUSpeed&0x03]
}
