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

package control

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/hardware/preferences"
)

// BatteryLevel is the level the emulated battery is set to.
type BatteryLevel uint8

// List of valid BatteryLevel values.
const (
	Discharged BatteryLevel = iota
	Level0
	Level1
	Level2
	Level3
	Level4
)

func (l BatteryLevel) String() string {
	switch l {
	case Discharged:
		return "discharged"
	case Level0, Level1, Level2, Level3, Level4:
		return fmt.Sprintf("level %d", int(l-Level0))
	}
	return fmt.Sprintf("unknown level (%d)", int(l))
}

// BatteryLevelFromPreference converts the value of the battery preference to
// a BatteryLevel.
func BatteryLevelFromPreference(v int) BatteryLevel {
	if v == preferences.BatteryDischarged {
		return Discharged
	}
	return Level0 + BatteryLevel(v)
}

// ParseBatteryLevel converts a string to a BatteryLevel. Valid strings are
// the digits zero to four and "discharged".
func ParseBatteryLevel(s string) (BatteryLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "discharged" {
		return Discharged, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 4 {
		return Discharged, curated.Errorf("control: invalid battery level (%s)", s)
	}
	return Level0 + BatteryLevel(n), nil
}

// BatteryState is the value returned by the battery status port. It is the
// position in the battery handshake sequence.
type BatteryState uint8

// List of valid BatteryState values.
const (
	BatteryStable     BatteryState = 0
	BatteryBad        BatteryState = 1
	BatteryProbed     BatteryState = 3
	BatteryAcked      BatteryState = 4
	BatteryPastLevel0 BatteryState = 5
	BatteryPastLevel1 BatteryState = 7
	BatteryPastLevel2 BatteryState = 9
	BatteryPastLevel3 BatteryState = 11
)

func (s BatteryState) String() string {
	switch s {
	case BatteryStable:
		return "stable"
	case BatteryBad:
		return "bad"
	case BatteryProbed:
		return "probed"
	case BatteryAcked:
		return "acknowledged"
	case BatteryPastLevel0:
		return "above level 0"
	case BatteryPastLevel1:
		return "above level 1"
	case BatteryPastLevel2:
		return "above level 2"
	case BatteryPastLevel3:
		return "above level 3"
	}
	return fmt.Sprintf("invalid (%d)", int(s))
}

// batteryEvent is a write to one of the ports that drive the battery state.
type batteryEvent int

const (
	// write to the power mode port (0x07)
	evPowerMode batteryEvent = iota

	// write to the battery probe port (0x09)
	evProbe

	// write to the handshake port (0x00)
	evHandshake

	// write to the acknowledge port (0x0a)
	evAck

	// write to either of the abort ports (0x0b or 0x0c)
	evAbort
)

// a single step of the handshake on port 0x00. if the battery is set to the
// cutoff level the handshake collapses to the stable state
type handshakeStep struct {
	expect uint8
	cutoff BatteryLevel
	next   BatteryState
}

var handshake = map[BatteryState]handshakeStep{
	BatteryProbed:     {expect: 0x83, cutoff: Level0, next: BatteryPastLevel0},
	BatteryPastLevel0: {expect: 0x03, cutoff: Level1, next: BatteryPastLevel1},
	BatteryPastLevel1: {expect: 0x83, cutoff: Level2, next: BatteryPastLevel2},
	BatteryPastLevel2: {expect: 0x03, cutoff: Level3, next: BatteryPastLevel3},
}

// transition returns the next battery state for the event. the value is the
// byte written to the port and set is the level the battery is set to.
func (s BatteryState) transition(ev batteryEvent, value uint8, set BatteryLevel) BatteryState {
	switch ev {
	case evPowerMode:
		if value&0x90 != 0 {
			return BatteryBad
		}
		return BatteryStable

	case evProbe:
		if s != BatteryBad {
			return s
		}
		if set == Discharged || value&0x80 != 0 {
			return BatteryStable
		}
		return BatteryProbed

	case evHandshake:
		step, ok := handshake[s]
		if !ok {
			return s
		}
		if set == step.cutoff || value != step.expect {
			return BatteryStable
		}
		return step.next

	case evAck:
		if s == BatteryProbed {
			return BatteryAcked
		}
		return s

	case evAbort:
		return BatteryStable
	}

	return s
}
