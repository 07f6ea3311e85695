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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher84/prefs"
	"github.com/jetsetilly/gopher84/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	test.ExpectEquality(t, prefs.PushCommandLineStack("usb.plugged::true"), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "usb.plugged::true")

	// additional space is trimmed
	prefs.PushCommandLineStack("   usb.plugged:: true ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "usb.plugged::true")

	// remaining string is sorted by key
	test.ExpectEquality(t, prefs.PushCommandLineStack("usb.plugged::true; hardware.battery::2"), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.battery::2; usb.plugged::true")

	// invalid prefs string
	test.ExpectEquality(t, prefs.PushCommandLineStack("usb_plugged"), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// partially invalid prefs string
	prefs.PushCommandLineStack("usb_plugged;hardware.battery::2")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.battery::2")

	// consumed values are not returned by the pop
	prefs.PushCommandLineStack("usb.plugged::true;hardware.battery::2")
	ok, v := prefs.GetCommandLinePref("hardware.battery")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "2")
	ok, _ = prefs.GetCommandLinePref("hardware.battery")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "usb.plugged::true")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("usb.plugged::true")
	prefs.PushCommandLineStack("hardware.device::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top of the stack is consulted
	ok, _ := prefs.GetCommandLinePref("usb.plugged")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.device::1")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "usb.plugged::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
