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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher84/environment"
	"github.com/jetsetilly/gopher84/hardware/preferences"
	"github.com/jetsetilly/gopher84/logger"
	"github.com/jetsetilly/gopher84/test"
)

func TestPermission(t *testing.T) {
	p, err := preferences.NewPreferencesAt(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	main, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, main.IsMainEmulation())
	test.ExpectSuccess(t, main.AllowLogging())

	other, err := environment.NewEnvironment("inspect", p)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.IsMainEmulation())
	test.ExpectSuccess(t, other.IsEmulation("inspect"))
	test.ExpectFailure(t, other.AllowLogging())

	// the two environments share preferences
	test.ExpectSuccess(t, main.Prefs.Battery.Set(1))
	test.ExpectEquality(t, other.Prefs.Battery.Get().(int), 1)

	var nilEnv *environment.Environment
	test.ExpectSuccess(t, nilEnv.AllowLogging())

	// environment satisfies the logger permission interface
	var _ logger.Permission = main
}
