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

// Stage is the stage of the current control transfer on endpoint zero.
type Stage uint8

// List of valid Stage values.
const (
	Idle Stage = iota
	SetupReceived
	DataStage
	StatusStage
	Stalled
)

func (s Stage) String() string {
	switch s {
	case Idle:
		return "idle"
	case SetupReceived:
		return "setup received"
	case DataStage:
		return "data"
	case StatusStage:
		return "status"
	case Stalled:
		return "stalled"
	}
	return fmt.Sprintf("unknown stage (%d)", int(s))
}

// Event causes a change of Stage.
type Event uint8

// List of valid Event values.
const (
	// a setup packet has been delivered by the host
	EvSetup Event = iota

	// the firmware has read all eight bytes of the setup packet. the setup
	// packet requests a data stage
	EvSetupDrainedData

	// as above but the setup packet does not request a data stage
	EvSetupDrainedNoData

	// data has been queued for the IN direction
	EvQueue

	// an empty packet has been queued for the IN direction
	EvQueueEmpty

	// the last of the queued data has been sent
	EvDrained

	// the firmware has written the DONE bit of CXFIFO
	EvDone

	// the firmware has written the STALL bit of CXFIFO
	EvStall

	// the firmware has written the CLR bit of CXFIFO or cleared the FIFO
	// through DEVTEST
	EvClear

	// the controller has been reset
	EvReset
)

func (e Event) String() string {
	switch e {
	case EvSetup:
		return "setup"
	case EvSetupDrainedData:
		return "setup drained (data)"
	case EvSetupDrainedNoData:
		return "setup drained (no data)"
	case EvQueue:
		return "queue"
	case EvQueueEmpty:
		return "queue empty"
	case EvDrained:
		return "drained"
	case EvDone:
		return "done"
	case EvStall:
		return "stall"
	case EvClear:
		return "clear"
	case EvReset:
		return "reset"
	}
	return fmt.Sprintf("unknown event (%d)", int(e))
}

type transition struct {
	from Stage
	ev   Event
}

// every defined transition. a missing entry leaves the stage unchanged
var transitions = map[transition]Stage{
	{Idle, EvSetup}: SetupReceived,
	{Idle, EvStall}: Stalled,
	{Idle, EvClear}: Idle,
	{Idle, EvReset}: Idle,
	{Idle, EvQueue}: DataStage,

	{SetupReceived, EvSetup}:              SetupReceived,
	{SetupReceived, EvSetupDrainedData}:   DataStage,
	{SetupReceived, EvSetupDrainedNoData}: StatusStage,
	{SetupReceived, EvQueue}:              DataStage,
	{SetupReceived, EvQueueEmpty}:         StatusStage,
	{SetupReceived, EvStall}:              Stalled,
	{SetupReceived, EvClear}:              Idle,
	{SetupReceived, EvReset}:              Idle,

	{DataStage, EvSetup}:      SetupReceived,
	{DataStage, EvQueue}:      DataStage,
	{DataStage, EvQueueEmpty}: StatusStage,
	{DataStage, EvDrained}:    StatusStage,
	{DataStage, EvStall}:      Stalled,
	{DataStage, EvClear}:      Idle,
	{DataStage, EvReset}:      Idle,

	{StatusStage, EvSetup}: SetupReceived,
	{StatusStage, EvDone}:  Idle,
	{StatusStage, EvStall}: Stalled,
	{StatusStage, EvClear}: Idle,
	{StatusStage, EvReset}: Idle,

	{Stalled, EvSetup}: SetupReceived,
	{Stalled, EvStall}: Stalled,
	{Stalled, EvClear}: Idle,
	{Stalled, EvReset}: Idle,
}

// Next returns the stage that follows the event. The second return value is
// false if the transition is not defined, in which case the returned stage is
// the current stage.
func (s Stage) Next(ev Event) (Stage, bool) {
	n, ok := transitions[transition{from: s, ev: ev}]
	if !ok {
		return s, false
	}
	return n, true
}
