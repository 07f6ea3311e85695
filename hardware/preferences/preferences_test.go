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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher84/hardware/preferences"
	"github.com/jetsetilly/gopher84/prefs"
	"github.com/jetsetilly/gopher84/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Device.Get().(int), preferences.DeviceTI84PlusCE)
	test.ExpectEquality(t, p.Battery.Get().(int), 4)
	test.ExpectEquality(t, p.USBPlugged.Get().(bool), false)
	test.ExpectEquality(t, p.ResetOpensDebugger.Get().(bool), false)
}

func TestValidation(t *testing.T) {
	p, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Device.Set(2))
	test.ExpectSuccess(t, p.Device.Set(preferences.DeviceTI83PremiumCE))

	test.ExpectFailure(t, p.Battery.Set(5))
	test.ExpectFailure(t, p.Battery.Set(-2))
	test.ExpectSuccess(t, p.Battery.Set(preferences.BatteryDischarged))
	test.ExpectEquality(t, p.Battery.Get().(int), preferences.BatteryDischarged)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesAt(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Battery.Set(2))
	test.ExpectSuccess(t, p.USBPlugged.Set(true))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesAt(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Battery.Get().(int), 2)
	test.ExpectEquality(t, q.USBPlugged.Get().(bool), true)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("hardware.device::1; debugger.resetopens::true")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Device.Get().(int), preferences.DeviceTI83PremiumCE)
	test.ExpectEquality(t, p.ResetOpensDebugger.Get().(bool), true)
}
