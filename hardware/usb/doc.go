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

// Package usb emulates the USB controller of the calculator. The controller is
// a FOTG210 style dual-role controller, although only the peripheral (device)
// role is modelled in any depth.
//
// The register block is byte addressed through the port bus but each register
// is 32 bits wide and stored little endian. Registers are one of read-only,
// read/write under a mask or write-one-to-clear. A small number of registers
// have bits that trigger an action and then clear themselves.
//
// Interrupt sources are grouped in the same way as the real controller. The
// host group (USBSTS), the OTG group (OTGISR) and the three device groups
// (GISR0, GISR1 and GISR2). Each group has an entry point that marks pending
// bits. The entry point then recomputes the summary registers and tells the
// InterruptController whether an unmasked interrupt is pending.
//
// Endpoint zero control transfers are driven by the Stage type and its
// transition table. A setup packet is delivered with DeliverSetup(), read by
// the firmware through the EP0DATA register, and answered with
// QueueSendPacket() and ServeInPacket(). The firmware completes the transfer
// by writing the DONE bit of CXFIFO.
package usb
