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

// Line identifies the source of an interrupt signal.
type Line int

// List of valid Line values.
const (
	LineHost Line = iota
	LineOTG
	LineGroup0
	LineGroup1
	LineGroup2

	// a change to a mask or enable register
	LineSummary
)

func (l Line) String() string {
	switch l {
	case LineHost:
		return "host"
	case LineOTG:
		return "otg"
	case LineGroup0:
		return "group 0"
	case LineGroup1:
		return "group 1"
	case LineGroup2:
		return "group 2"
	case LineSummary:
		return "summary"
	}
	return fmt.Sprintf("unknown line (%d)", int(l))
}

// InterruptController is told whenever an interrupt source changes. The
// pending argument is true if any unmasked interrupt is pending in the
// controller.
type InterruptController interface {
	Signal(line Line, pending bool)
}

// the interrupt line affected by a write to the register at the offset
func lineFor(off uint16) Line {
	switch off {
	case USBCMD, USBSTS, USBINTR:
		return LineHost
	case OTGCSR, OTGISR, OTGIER:
		return LineOTG
	case GIMR0, GISR0, CXFIFO, DEVTEST:
		return LineGroup0
	case GIMR1, GISR1:
		return LineGroup1
	case GIMR2, GISR2:
		return LineGroup2
	}
	return LineSummary
}

// update recomputes the summary registers GISR and ISR.
func (usb *USB) update() {
	r := &usb.state.Regs

	var gisr uint32
	if r[GISR0>>2]&^r[GIMR0>>2]&maskGISR0 != 0 {
		gisr |= Group0
	}
	if r[GISR1>>2]&^r[GIMR1>>2]&maskGISR1 != 0 {
		gisr |= Group1
	}
	if r[GISR2>>2]&^r[GIMR2>>2]&maskGISR2 != 0 {
		gisr |= Group2
	}
	r[GISR>>2] = gisr

	var isr uint32
	if gisr&^r[GIMR>>2] != 0 && r[DEVCTRL>>2]&DevGlobalIntEn == DevGlobalIntEn {
		isr |= IntDevice
	}
	if r[OTGISR>>2]&r[OTGIER>>2]&maskOTGISR != 0 {
		isr |= IntOTG
	}
	if r[USBSTS>>2]&r[USBINTR>>2]&stsInterrupts != 0 {
		isr |= IntHost
	}
	r[ISR>>2] = isr
}

// interruptPending returns true if any source in ISR is not masked by IMR.
func (usb *USB) interruptPending() bool {
	r := &usb.state.Regs
	return r[ISR>>2]&^r[IMR>>2]&(IntDevice|IntOTG|IntHost) != 0
}

func (usb *USB) signal(line Line) {
	usb.signalled = usb.interruptPending()
	usb.ic.Signal(line, usb.signalled)
}

// notifyChange signals the interrupt controller only if the pending state has
// changed since the last signal.
func (usb *USB) notifyChange(line Line) {
	if usb.interruptPending() != usb.signalled {
		usb.signal(line)
	}
}

func (usb *USB) group0(bits uint8, observable bool) {
	usb.state.Regs[GISR0>>2] |= uint32(bits) & maskGISR0
	usb.update()
	if observable {
		usb.signal(LineGroup0)
	}
}

// HostInt marks pending host controller interrupts in USBSTS.
func (usb *USB) HostInt(bits uint8) {
	usb.state.Regs[USBSTS>>2] |= uint32(bits) & stsInterrupts
	usb.update()
	usb.signal(LineHost)
}

// OTGInt marks pending OTG interrupts in OTGISR.
func (usb *USB) OTGInt(bits uint16) {
	usb.state.Regs[OTGISR>>2] |= uint32(bits) & maskOTGISR
	usb.update()
	usb.signal(LineOTG)
}

// Group0Int marks pending control endpoint interrupts in GISR0.
func (usb *USB) Group0Int(bits uint8) {
	usb.group0(bits, true)
}

// Group1Int marks pending FIFO interrupts in GISR1.
func (usb *USB) Group1Int(bits uint32) {
	usb.state.Regs[GISR1>>2] |= bits & maskGISR1
	usb.update()
	usb.signal(LineGroup1)
}

// Group2Int marks pending bus event interrupts in GISR2.
func (usb *USB) Group2Int(bits uint16) {
	usb.state.Regs[GISR2>>2] |= uint32(bits) & maskGISR2
	usb.update()
	usb.signal(LineGroup2)
}
