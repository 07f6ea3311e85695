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

package dbgports_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher84/debugger/dbgports"
	"github.com/jetsetilly/gopher84/environment"
	"github.com/jetsetilly/gopher84/hardware/preferences"
	"github.com/jetsetilly/gopher84/test"
)

func TestFlags(t *testing.T) {
	p := dbgports.NewPorts(nil)

	p.Set(0x3010, dbgports.Read)
	p.Set(0x3010, dbgports.Write)
	p.Set(0x0001, dbgports.Freeze)
	test.ExpectEquality(t, p.PortFlags(0x3010), dbgports.Read|dbgports.Write)
	test.ExpectEquality(t, p.PortFlags(0x0001), dbgports.Freeze)
	test.ExpectEquality(t, p.PortFlags(0x0002), dbgports.None)

	l := p.List()
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0].Address, 0x0001)
	test.ExpectEquality(t, l[1].String(), "0x3010 read+write")

	p.Clear(0x3010, dbgports.Read)
	test.ExpectEquality(t, p.PortFlags(0x3010), dbgports.Write)
	p.Clear(0x3010, dbgports.Write)
	test.ExpectEquality(t, len(p.List()), 1)

	p.ClearAll()
	test.ExpectEquality(t, len(p.List()), 0)
	test.ExpectEquality(t, p.PortFlags(0x0001), dbgports.None)
}

func TestOpen(t *testing.T) {
	p := dbgports.NewPorts(nil)

	var cb []dbgports.Hit
	p.OnOpen = func(h dbgports.Hit) {
		cb = append(cb, h)
	}

	p.Open(dbgports.PortWriteWatch, 0x0009)
	p.Open(dbgports.User, 0xd1887c)

	h, n := p.LastHit()
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, h.Reason, dbgports.User)
	test.ExpectEquality(t, h.Address, 0xd1887c)
	test.DemandEquality(t, len(cb), 2)
	test.ExpectEquality(t, cb[0].String(), "port write watch @ 0x0009")

	p.ClearHits()
	_, n = p.LastHit()
	test.ExpectEquality(t, n, 0)
}

func TestResetOpensDebugger(t *testing.T) {
	// no environment means the preference cannot be consulted
	test.ExpectFailure(t, dbgports.NewPorts(nil).ResetOpensDebugger())

	prf, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, prf)
	test.DemandSuccess(t, err)

	p := dbgports.NewPorts(env)
	test.ExpectFailure(t, p.ResetOpensDebugger())
	test.ExpectSuccess(t, prf.ResetOpensDebugger.Set(true))
	test.ExpectSuccess(t, p.ResetOpensDebugger())
}
