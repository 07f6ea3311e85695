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

// Register offsets in the USB range of the port address space.
const (
	HCCAPBASE        = 0x000
	HCSPARAMS        = 0x004
	HCCPARAMS        = 0x008
	USBCMD           = 0x010
	USBSTS           = 0x014
	USBINTR          = 0x018
	FRINDEX          = 0x01c
	PERIODICLISTBASE = 0x024
	ASYNCLISTADDR    = 0x028
	PORTSC           = 0x030
	MISCR            = 0x040
	OTGCSR           = 0x080
	OTGISR           = 0x084
	OTGIER           = 0x088
	ISR              = 0x0c0
	IMR              = 0x0c4
	DEVCTRL          = 0x100
	DEVADDR          = 0x104
	DEVTEST          = 0x108
	SOFFNR           = 0x10c
	SOFMTR           = 0x110
	PHYTMSR          = 0x114
	CXFIFO           = 0x120
	IDLE             = 0x124
	GIMR             = 0x130
	GIMR0            = 0x134
	GIMR1            = 0x138
	GIMR2            = 0x13c
	GISR             = 0x140
	GISR0            = 0x144
	GISR1            = 0x148
	GISR2            = 0x14c
	RXZLP            = 0x150
	TXZLP            = 0x154
	ISOEASR          = 0x158
	IEP1             = 0x160
	OEP1             = 0x180
	EPMAP14          = 0x1a0
	EPMAP58          = 0x1a4
	FIFOMAP          = 0x1a8
	FIFOCFG          = 0x1ac
	FIFOCSR0         = 0x1b0
	DMAFIFO          = 0x1c0
	DMACTRL          = 0x1c4
	DMAADDR          = 0x1c8
	DMACXF           = 0x1cc
	EP0DATA          = 0x1d0
)

// the number of 32 bit registers in the register block. EP0DATA and
// everything above it are not stored in the block
const numRegs = EP0DATA >> 2

// USBCMD bits.
const (
	CmdRun     = 1 << 0
	CmdHCReset = 1 << 1
)

// USBSTS bits. The low six bits are interrupt sources.
const (
	StsUSBInt     = 1 << 0
	StsUSBErrInt  = 1 << 1
	StsPortChange = 1 << 2
	StsFrameRoll  = 1 << 3
	StsSysErr     = 1 << 4
	StsAsyncAdv   = 1 << 5
	StsHCHalted   = 1 << 12
	stsInterrupts = 0x3f
)

// PORTSC bits.
const (
	PortConnect       = 1 << 0
	PortConnectChange = 1 << 1
	PortEnable        = 1 << 2
	PortEnableChange  = 1 << 3
	PortOverCurrent   = 1 << 5
)

// OTGCSR status bits. These are driven by Plug() and are read-only.
const (
	OTGBSessEnd   = 1 << 16
	OTGBSessVld   = 1 << 17
	OTGASessVld   = 1 << 18
	OTGAVbusVld   = 1 << 19
	OTGRoleB      = 1 << 20
	OTGIDB        = 1 << 21
	otgStatusBits = 0x003f0000
)

// OTGISR bits.
const (
	OTGIntBSRPDone = 1 << 0
	OTGIntASRPDet  = 1 << 4
	OTGIntAVbusErr = 1 << 5
	OTGIntBSessEnd = 1 << 6
	OTGIntRoleChg  = 1 << 8
	OTGIntIDChg    = 1 << 9
	OTGIntOverCur  = 1 << 10
	OTGIntAWaitCon = 1 << 11
	OTGIntAPlugRmv = 1 << 12
)

// ISR and IMR bits.
const (
	IntDevice   = 1 << 0
	IntOTG      = 1 << 1
	IntHost     = 1 << 2
	IntPolarity = 1 << 3
)

// DEVCTRL bits.
const (
	DevRemoteWakeup = 1 << 0
	DevHalfSpeed    = 1 << 1
	DevGlobalIntEn  = 1 << 2
	DevSoftReset    = 1 << 4
	DevForceFS      = 1 << 5
)

// DEVTEST bits.
const (
	TestClearFIFO = 1 << 0
)

// CXFIFO bits.
const (
	CxDone       = 1 << 0
	CxTestDone   = 1 << 1
	CxStall      = 1 << 2
	CxClear      = 1 << 3
	CxFull       = 1 << 4
	CxEmpty      = 1 << 5
	cxCountShift = 24
)

// GIMR and GISR group bits.
const (
	Group0 = 1 << 0
	Group1 = 1 << 1
	Group2 = 1 << 2
)

// GISR0 bits. Group zero is the control endpoint.
const (
	CxSetup    = 1 << 0
	CxIn       = 1 << 1
	CxOut      = 1 << 2
	CxComEnd   = 1 << 3
	CxComFail  = 1 << 4
	CxComAbort = 1 << 5
)

// GISR2 bits. Group two is bus events.
const (
	BusReset    = 1 << 0
	BusSuspend  = 1 << 1
	BusResume   = 1 << 2
	IsoSeqErr   = 1 << 3
	IsoSeqAbort = 1 << 4
	Tx0Byte     = 1 << 5
	Rx0Byte     = 1 << 6
	DMAComplete = 1 << 7
	DMAError    = 1 << 8
	BusIdle     = 1 << 9
	BusWakeup   = 1 << 10
)

// the masks of the interrupt source registers
const (
	maskGISR0  = 0x0000003f
	maskGISR1  = 0x000f00ff
	maskGISR2  = 0x000007ff
	maskOTGISR = 0x00001ff1
)

// access describes how a register responds to a write.
type access int

const (
	// writes are ignored
	readOnly access = iota

	// bits in the mask are replaced by the written value
	readWrite

	// bits in the mask are cleared if the written value has the bit set
	writeOneClear
)

type register struct {
	access access
	mask   uint32
	reset  uint32
}

// the behaviour of every register in the block. registers not in the table
// read as zero and ignore writes.
var registers = map[uint16]register{
	HCCAPBASE:        {readOnly, 0, 0x01000010},
	HCSPARAMS:        {readOnly, 0, 0x00000001},
	HCCPARAMS:        {readOnly, 0, 0x00000006},
	USBCMD:           {readWrite, 0x00ff0b3f, 0x00080000},
	USBSTS:           {writeOneClear, stsInterrupts, StsHCHalted},
	USBINTR:          {readWrite, 0x0000003f, 0},
	FRINDEX:          {readWrite, 0x00003fff, 0},
	PERIODICLISTBASE: {readWrite, 0xfffff000, 0},
	ASYNCLISTADDR:    {readWrite, 0xffffffe0, 0},
	PORTSC:           {writeOneClear, PortConnectChange | PortEnableChange | PortOverCurrent, 0},
	MISCR:            {readWrite, 0xffffffff, 0x00000181},
	OTGCSR:           {readWrite, 0x0000003f, 0},
	OTGISR:           {writeOneClear, maskOTGISR, 0},
	OTGIER:           {readWrite, maskOTGISR, 0},
	ISR:              {readOnly, 0, 0},
	IMR:              {readWrite, 0x0000000f, 0},
	DEVCTRL:          {readWrite, 0x00000067, DevForceFS},
	DEVADDR:          {readWrite, 0x000000ff, 0},
	DEVTEST:          {readWrite, 0x0000007e, 0},
	SOFFNR:           {readOnly, 0, 0},
	SOFMTR:           {readWrite, 0x0000ffff, 0},
	PHYTMSR:          {readWrite, 0x0000001f, 0},
	CXFIFO:           {readOnly, 0, 0},
	IDLE:             {readWrite, 0x00000007, 0},
	GIMR:             {readWrite, 0x00000007, 0},
	GIMR0:            {readWrite, maskGISR0, 0},
	GIMR1:            {readWrite, maskGISR1, 0},
	GIMR2:            {readWrite, maskGISR2, 0},
	GISR:             {readOnly, 0, 0},
	GISR0:            {writeOneClear, maskGISR0, 0},
	GISR1:            {writeOneClear, maskGISR1, 0},
	GISR2:            {writeOneClear, maskGISR2, 0},
	RXZLP:            {readWrite, 0xffffffff, 0},
	TXZLP:            {readWrite, 0xffffffff, 0},
	ISOEASR:          {readWrite, 0xffffffff, 0},
	EPMAP14:          {readWrite, 0xffffffff, 0xffffffff},
	EPMAP58:          {readWrite, 0xffffffff, 0xffffffff},
	FIFOMAP:          {readWrite, 0xffffffff, 0x0f0f0f0f},
	FIFOCFG:          {readWrite, 0xffffffff, 0},
	FIFOCSR0:         {readWrite, 0xffffffff, 0},
	FIFOCSR0 + 0x04:  {readWrite, 0xffffffff, 0},
	FIFOCSR0 + 0x08:  {readWrite, 0xffffffff, 0},
	FIFOCSR0 + 0x0c:  {readWrite, 0xffffffff, 0},
	DMAFIFO:          {readWrite, 0xffffffff, 0},
	DMACTRL:          {readWrite, 0xffffffff, 0},
	DMAADDR:          {readWrite, 0xffffffff, 0},
	DMACXF:           {readWrite, 0xffffffff, 0},
}

func init() {
	for i := uint16(0); i < 8; i++ {
		registers[IEP1+i*4] = register{readWrite, 0x00003fff, 0x00000200}
		registers[OEP1+i*4] = register{readWrite, 0x00001fff, 0x00000200}
	}
}

// the registers that are restored by the host controller reset bit in USBCMD
func isHostRegister(offset uint16) bool {
	return offset >= USBCMD && offset < OTGCSR
}

// the registers that are restored by the soft reset bit in DEVCTRL
func isDeviceRegister(offset uint16) bool {
	return offset >= DEVCTRL && offset < EP0DATA
}
