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

import (
	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/environment"
	"github.com/jetsetilly/gopher84/logger"
)

// Status bits returned by the Status() function.
const (
	StatusVBUS    = 0x40
	StatusPending = 0x80
)

// State is the entire state of the USB controller. It is a fixed size
// structure and can be stored verbatim.
//
// Data queued with QueueSendPacket() is owned by the caller and is not part
// of the state.
type State struct {
	Regs [numRegs]uint32

	// the setup packet and the read cursor used by the EP0DATA register
	EP0      [SetupPacketSize]uint8
	EP0Index uint8

	Stage Stage

	// the cable is plugged in
	Plugged bool
}

// USB emulates the USB controller.
type USB struct {
	env *environment.Environment
	ic  InterruptController

	state State

	// the remainder of the data queued for the IN direction
	pending []byte

	// the value of pending most recently sent to the interrupt controller
	signalled bool
}

// NewUSB is the preferred method of initialisation for the USB type. The
// cable is plugged in if the preferences say so.
func NewUSB(env *environment.Environment, ic InterruptController) (*USB, error) {
	if ic == nil {
		return nil, curated.Errorf("usb: no interrupt controller")
	}

	usb := &USB{
		env: env,
		ic:  ic,
	}

	if env != nil && env.Prefs != nil {
		usb.state.Plugged = env.Prefs.USBPlugged.Get().(bool)
	}
	usb.Reset()

	return usb, nil
}

// Reset the controller. Every register returns to the power-on value and the
// control transfer is abandoned. The cable stays as it is.
func (usb *USB) Reset() {
	usb.state = State{Plugged: usb.state.Plugged}
	for off, r := range registers {
		usb.state.Regs[off>>2] = r.reset
	}
	usb.pending = nil
	usb.cable()
	usb.update()

	// an interrupt that was asserted before the reset must be withdrawn
	usb.notifyChange(LineSummary)
}

// Save returns a copy of the controller state.
func (usb *USB) Save() State {
	return usb.state
}

// Restore the controller state. Any data queued for the IN direction is
// dropped.
func (usb *USB) Restore(s State) {
	usb.state = s
	usb.pending = nil
	usb.update()
	usb.notifyChange(LineSummary)
}

// Register returns the current value of the 32 bit register at the offset.
func (usb *USB) Register(offset uint16) uint32 {
	return usb.value(offset &^ 3)
}

// Stage returns the current stage of the endpoint zero control transfer.
func (usb *USB) Stage() Stage {
	return usb.state.Stage
}

// Setup returns the most recently delivered setup packet.
func (usb *USB) Setup() SetupPacket {
	sp, _ := ParseSetupPacket(usb.state.EP0[:])
	return sp
}

// Plugged returns true if the cable is plugged in.
func (usb *USB) Plugged() bool {
	return usb.state.Plugged
}

// Status returns the summary of the controller that is mirrored in the
// control ports.
func (usb *USB) Status() uint8 {
	var s uint8
	if usb.interruptPending() {
		s |= StatusPending
	}
	if usb.state.Plugged {
		s |= StatusVBUS
	}
	return s
}

// cable sets the status bits that reflect whether the cable is plugged in.
func (usb *USB) cable() {
	otg := usb.state.Regs[OTGCSR>>2] &^ otgStatusBits
	otg |= OTGRoleB | OTGIDB
	port := usb.state.Regs[PORTSC>>2] &^ (PortConnect | PortEnable)
	if usb.state.Plugged {
		otg |= OTGBSessVld | OTGAVbusVld
		port |= PortConnect | PortEnable
	} else {
		otg |= OTGBSessEnd
	}
	usb.state.Regs[OTGCSR>>2] = otg
	usb.state.Regs[PORTSC>>2] = port
}

// Plug connects or disconnects the cable. Nothing happens if the cable is
// already in the requested state.
func (usb *USB) Plug(connected bool) {
	if usb.state.Plugged == connected {
		return
	}

	usb.state.Plugged = connected
	usb.cable()
	usb.state.Regs[PORTSC>>2] |= PortConnectChange
	usb.event(EvReset, true)

	if connected {
		logger.Log(usb.env, "usb", "cable plugged in")
		usb.OTGInt(OTGIntASRPDet)
		usb.Group2Int(BusReset | BusResume)
	} else {
		logger.Log(usb.env, "usb", "cable unplugged")
		usb.OTGInt(OTGIntBSessEnd)
		usb.Group2Int(BusSuspend)
	}
}

// value returns the register at the offset. some registers are computed
// rather than stored.
func (usb *USB) value(off uint16) uint32 {
	if off >= EP0DATA {
		return 0
	}
	if off == CXFIFO {
		return usb.cxfifo()
	}
	return usb.state.Regs[off>>2]
}

// the CXFIFO register reports the state of the control endpoint FIFO
func (usb *USB) cxfifo() uint32 {
	var count int
	if usb.state.Stage == SetupReceived {
		count = max(SetupPacketSize-int(usb.state.EP0Index), 0)
	} else {
		count = min(len(usb.pending), MaxPacketSize)
	}

	v := uint32(count) << cxCountShift
	switch count {
	case 0:
		v |= CxEmpty
	case SetupPacketSize, MaxPacketSize:
		v |= CxFull
	}
	if usb.state.Stage == Stalled {
		v |= CxStall
	}
	return v
}

// Read implements the port.Device interface.
func (usb *USB) Read(address uint16, peek bool) uint8 {
	if address >= EP0DATA {
		if address >= EP0DATA+4 {
			return 0
		}
		n := uint8(address - EP0DATA)
		v := usb.state.EP0[(usb.state.EP0Index+n)&7]
		if n == 3 && !peek {
			usb.advanceSetup()
		}
		return v
	}

	shift := uint(address&3) << 3
	return uint8(usb.value(address&^3) >> shift)
}

// advanceSetup moves the setup packet cursor on by one 32 bit word. when the
// whole packet has been read the transfer moves on.
func (usb *USB) advanceSetup() {
	if usb.state.EP0Index >= SetupPacketSize {
		return
	}
	usb.state.EP0Index += 4
	if usb.state.EP0Index < SetupPacketSize {
		return
	}
	if usb.Setup().Length > 0 {
		usb.event(EvSetupDrainedData, true)
	} else {
		usb.event(EvSetupDrainedNoData, true)
	}
}

// Write implements the port.Device interface.
//
// A poke changes register state in the same way as a write, including the
// self-clearing reset and FIFO clear bits, but does not log or signal the
// interrupt controller. Clearing the FIFO drops queued IN data even when
// poked.
func (usb *USB) Write(address uint16, data uint8, poke bool) {
	observable := !poke

	if address >= EP0DATA {
		if address < EP0DATA+4 {
			n := uint8(address - EP0DATA)
			usb.state.EP0[(usb.state.EP0Index+n)&7] = data
		}
		return
	}

	off := address &^ 3
	r, ok := registers[off]
	if !ok {
		return
	}

	shift := uint(address&3) << 3
	lane := uint32(0xff) << shift
	v := uint32(data) << shift
	idx := off >> 2

	switch r.access {
	case readWrite:
		usb.state.Regs[idx] = usb.state.Regs[idx]&^(r.mask&lane) | v&r.mask&lane
	case writeOneClear:
		usb.state.Regs[idx] &^= v & r.mask & lane
	}

	switch off {
	case USBCMD:
		if v&CmdHCReset == CmdHCReset {
			usb.resetHost()
		}
		if usb.state.Regs[USBCMD>>2]&CmdRun == CmdRun {
			usb.state.Regs[USBSTS>>2] &^= StsHCHalted
		} else {
			usb.state.Regs[USBSTS>>2] |= StsHCHalted
		}

	case DEVCTRL:
		if v&DevSoftReset == DevSoftReset {
			usb.resetDevice(observable)
		}

	case DEVTEST:
		if v&TestClearFIFO == TestClearFIFO {
			usb.clearFIFO(observable)
		}

	case CXFIFO:
		if v&CxClear == CxClear {
			usb.clearFIFO(observable)
		}
		if v&CxStall == CxStall {
			usb.event(EvStall, observable)
		}
		if v&CxDone == CxDone {
			// the command end interrupt is only raised when a status stage
			// completes
			if usb.event(EvDone, observable) {
				usb.group0(CxComEnd, observable)
			}
		}
	}

	usb.update()
	if observable {
		usb.notifyChange(lineFor(off))
	}
}

// resetHost restores the host controller registers.
func (usb *USB) resetHost() {
	for off, r := range registers {
		if isHostRegister(off) {
			usb.state.Regs[off>>2] = r.reset
		}
	}
	usb.cable()
}

// resetDevice restores the device controller registers and abandons the
// control transfer.
func (usb *USB) resetDevice(observable bool) {
	for off, r := range registers {
		if isDeviceRegister(off) {
			usb.state.Regs[off>>2] = r.reset
		}
	}
	usb.state.EP0 = [SetupPacketSize]uint8{}
	usb.state.EP0Index = 0
	usb.event(EvReset, observable)
	if observable {
		logger.Log(usb.env, "usb", "device controller reset")
	}
}

// clearFIFO empties the control endpoint FIFO.
func (usb *USB) clearFIFO(observable bool) {
	usb.state.EP0Index = 0
	usb.pending = nil
	usb.event(EvClear, observable)
}

// event moves the control transfer on. returns false if the event is not
// valid for the current stage.
func (usb *USB) event(ev Event, observable bool) bool {
	next, ok := usb.state.Stage.Next(ev)
	if !ok {
		if observable {
			logger.Logf(usb.env, "usb", "ep0: %s event ignored in %s stage", ev, usb.state.Stage)
		}
		return false
	}

	usb.state.Stage = next
	if next == Idle {
		usb.pending = nil
	}

	return true
}

// DeliverSetup delivers a setup packet from the host. Packets shorter than
// eight bytes are ignored and longer packets are truncated. Returns true if
// the packet was accepted.
func (usb *USB) DeliverSetup(packet []byte) bool {
	if len(packet) < SetupPacketSize {
		logger.Logf(usb.env, "usb", "ep0: short setup packet ignored (%d bytes)", len(packet))
		return false
	}

	copy(usb.state.EP0[:], packet[:SetupPacketSize])
	usb.state.EP0Index = 0
	usb.pending = nil
	usb.event(EvSetup, true)
	usb.group0(CxSetup, true)

	return true
}

// QueueSendPacket queues data for the IN direction of endpoint zero. The
// data is served in packets by ServeInPacket(). The data slice is not copied
// and must not be changed until it has been served. An empty slice moves the
// transfer straight to the status stage.
//
// Returns false if the control transfer is not in a stage that can accept
// data.
func (usb *USB) QueueSendPacket(data []byte) bool {
	ev := EvQueue
	if len(data) == 0 {
		ev = EvQueueEmpty
	}
	if !usb.event(ev, true) {
		return false
	}
	if len(data) > 0 {
		usb.pending = data
	}
	return true
}

// ServeInPacket returns the next packet of queued IN data. A packet is never
// larger than MaxPacketSize. Returns nil if there is no queued data.
func (usb *USB) ServeInPacket() []byte {
	if len(usb.pending) == 0 {
		return nil
	}

	n := min(len(usb.pending), MaxPacketSize)
	pkt := usb.pending[:n]
	usb.pending = usb.pending[n:]

	if len(usb.pending) == 0 {
		usb.pending = nil
		usb.event(EvDrained, true)
	}
	usb.group0(CxIn, true)

	return pkt
}

// PendingLength returns the number of queued IN bytes that have not been
// served.
func (usb *USB) PendingLength() int {
	return len(usb.pending)
}
