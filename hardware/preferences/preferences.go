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

// Package preferences collates the preference values that affect how the
// peripheral hardware is initialised.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/paths"
	"github.com/jetsetilly/gopher84/prefs"
)

// Device type values returned by the control port.
const (
	DeviceTI84PlusCE    = 0
	DeviceTI83PremiumCE = 1
)

// BatteryDischarged is the value of the Battery preference that indicates a
// flat battery. Values zero to four are the battery level.
const BatteryDischarged = -1

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the device type reported by the control port
	Device prefs.Int

	// the battery level the emulated battery reports on the battery
	// handshake. see BatteryDischarged
	Battery prefs.Int

	// whether the USB cable is plugged in when the hardware is created
	USBPlugged prefs.Bool

	// open the debugger whenever the control device requests a reset
	ResetOpensDebugger prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("device=%s battery=%s usb=%s resetopens=%s",
		p.Device.String(), p.Battery.String(), p.USBPlugged.String(), p.ResetOpensDebugger.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory. A missing preferences file is not an error.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

// NewPreferencesAt is like NewPreferences but uses the preferences file at the
// specified path.
func NewPreferencesAt(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Device.SetHookPre(func(v prefs.Value) error {
		switch v.(int) {
		case DeviceTI84PlusCE, DeviceTI83PremiumCE:
			return nil
		}
		return curated.Errorf("preferences: unknown device type (%d)", v)
	})

	p.Battery.SetHookPre(func(v prefs.Value) error {
		if v.(int) < BatteryDischarged || v.(int) > 4 {
			return curated.Errorf("preferences: battery level out of range (%d)", v)
		}
		return nil
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("hardware.device", &p.Device); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.battery", &p.Battery); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("usb.plugged", &p.USBPlugged); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("debugger.resetopens", &p.ResetOpensDebugger); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(false); err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Device.Set(DeviceTI84PlusCE)
	p.Battery.Set(4)
	p.USBPlugged.Set(false)
	p.ResetOpensDebugger.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
