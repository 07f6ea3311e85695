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

package dbgports

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher84/environment"
	"github.com/jetsetilly/gopher84/logger"
)

// Flags is the watch/freeze state of a single port address.
type Flags uint8

// List of valid Flags bits.
const (
	Read Flags = 1 << iota
	Write
	Freeze

	None Flags = 0
)

func (f Flags) String() string {
	if f == None {
		return "none"
	}
	s := make([]string, 0, 3)
	if f&Read == Read {
		s = append(s, "read")
	}
	if f&Write == Write {
		s = append(s, "write")
	}
	if f&Freeze == Freeze {
		s = append(s, "freeze")
	}
	return strings.Join(s, "+")
}

// Reason is the cause of the debugger being opened.
type Reason int

// List of valid Reason values.
const (
	User Reason = iota
	PortReadWatch
	PortWriteWatch
)

func (r Reason) String() string {
	switch r {
	case User:
		return "user"
	case PortReadWatch:
		return "port read watch"
	case PortWriteWatch:
		return "port write watch"
	}
	return fmt.Sprintf("unknown reason (%d)", int(r))
}

// Hit records a single request to open the debugger.
type Hit struct {
	Reason  Reason
	Address uint32
}

func (h Hit) String() string {
	return fmt.Sprintf("%s @ %#04x", h.Reason, h.Address)
}

// Watch is a port address with non-zero flags. Returned by the List()
// function.
type Watch struct {
	Address uint16
	Flags   Flags
}

func (w Watch) String() string {
	return fmt.Sprintf("%#04x %s", w.Address, w.Flags)
}

// Ports is the table of watch/freeze flags for the entire port address space.
type Ports struct {
	env *environment.Environment

	flags [0x10000]Flags

	// the number of addresses with non-zero flags. used to short-circuit
	// List() and to report status
	count int

	// the most recent hit and the total number of hits since the last call to
	// ClearHits()
	last Hit
	hits int

	// called whenever Open() is called. may be nil
	OnOpen func(Hit)
}

// NewPorts is the preferred method of initialisation for the Ports type. The
// environment is used to decide whether the debugger should be opened on a
// reset and for logging permission.
func NewPorts(env *environment.Environment) *Ports {
	return &Ports{env: env}
}

// PortFlags returns the flags for the address.
func (p *Ports) PortFlags(address uint16) Flags {
	return p.flags[address]
}

// Set adds the flags to those already set for the address.
func (p *Ports) Set(address uint16, f Flags) {
	if p.flags[address] == None && f != None {
		p.count++
	}
	p.flags[address] |= f
}

// Clear removes the flags from the address.
func (p *Ports) Clear(address uint16, f Flags) {
	if p.flags[address] == None {
		return
	}
	p.flags[address] &^= f
	if p.flags[address] == None {
		p.count--
	}
}

// ClearAll removes every flag from every address.
func (p *Ports) ClearAll() {
	p.flags = [0x10000]Flags{}
	p.count = 0
}

// List returns every address with non-zero flags in address order.
func (p *Ports) List() []Watch {
	l := make([]Watch, 0, p.count)
	if p.count == 0 {
		return l
	}
	for a, f := range p.flags {
		if f != None {
			l = append(l, Watch{Address: uint16(a), Flags: f})
		}
	}
	return l
}

// ResetOpensDebugger returns true if the debugger should be opened whenever
// the hardware requests a reset.
func (p *Ports) ResetOpensDebugger() bool {
	if p == nil || p.env == nil || p.env.Prefs == nil {
		return false
	}
	return p.env.Prefs.ResetOpensDebugger.Get().(bool)
}

// Open the debugger for the specified reason.
func (p *Ports) Open(reason Reason, address uint32) {
	p.last = Hit{Reason: reason, Address: address}
	p.hits++
	logger.Logf(p.env, "debugger", "opened: %s", p.last)
	if p.OnOpen != nil {
		p.OnOpen(p.last)
	}
}

// LastHit returns the most recent hit and the number of hits since the last
// call to ClearHits().
func (p *Ports) LastHit() (Hit, int) {
	return p.last, p.hits
}

// ClearHits forgets any previous hits.
func (p *Ports) ClearHits() {
	p.last = Hit{}
	p.hits = 0
}
