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


package monitor

// monitor keywords
const (
	cmdRead  = "READ"
	cmdWrite = "WRITE"
	cmdPeek  = "PEEK"
	cmdPoke  = "POKE"
	cmdPriv  = "PRIV"
	cmdPC    = "PC"

	cmdWatch = "WATCH"
	cmdClear = "CLEAR"
	cmdList  = "LIST"

	cmdSetup  = "SETUP"
	cmdSend   = "SEND"
	cmdIn     = "IN"
	cmdPlug   = "PLUG"
	cmdUnplug = "UNPLUG"

	cmdBattery  = "BATTERY"
	cmdCharging = "CHARGING"

	cmdSave  = "SAVE"
	cmdLoad  = "LOAD"
	cmdState = "STATE"
	cmdLog   = "LOG"
	cmdWait  = "WAIT"
	cmdReset = "RESET"
	cmdHelp  = "HELP"
	cmdQuit  = "QUIT"
)

// the template for every command. used by the HELP command
var commandTemplate = []string{
	cmdRead + " <address>",
	cmdWrite + " <address> <value>",
	cmdPeek + " <address>",
	cmdPoke + " <address> <value>",
	cmdPriv + " <pc>",
	cmdPC + " <pc>",

	cmdWatch + " [READ|WRITE|FREEZE] <address>",
	cmdClear + " WATCHES",
	cmdList + " WATCHES",

	cmdSetup + " <b0> <b1> <b2> <b3> <b4> <b5> <b6> <b7>",
	cmdSend + " <length>",
	cmdIn,
	cmdPlug,
	cmdUnplug,

	cmdBattery + " [0|1|2|3|4|DISCHARGED]",
	cmdCharging + " [ON|OFF]",

	cmdSave + " <file>",
	cmdLoad + " <file>",
	cmdState,
	cmdLog + " (<entries>)",
	cmdWait,
	cmdReset,
	cmdHelp + " (<command>)",
	cmdQuit,
}

// help text for each command
var help = map[string]string{
	cmdRead:     "Read a port as the CPU would. Debugger watches are honoured",
	cmdWrite:    "Write a port as the CPU would. Debugger watches are honoured",
	cmdPeek:     "Read a port without side effects",
	cmdPoke:     "Write a port without side effects",
	cmdPriv:     "Report whether code at the address is privileged",
	cmdPC:       "Set the program counter reported by the CPU",
	cmdWatch:    "Watch a port for reads or writes, or freeze it so that writes are dropped",
	cmdClear:    "Remove every watch",
	cmdList:     "List every watch",
	cmdSetup:    "Deliver a setup packet to the USB controller",
	cmdSend:     "Queue data for the USB IN direction",
	cmdIn:       "Serve the next USB IN packet",
	cmdPlug:     "Plug in the USB cable",
	cmdUnplug:   "Unplug the USB cable",
	cmdBattery:  "Set the battery level",
	cmdCharging: "Set whether the battery is charging",
	cmdSave:     "Save a snapshot image to a file",
	cmdLoad:     "Load a snapshot image from a file",
	cmdState:    "Print a summary of the peripheral state",
	cmdLog:      "Print the most recent log entries",
	cmdWait:     "Wait for a key press",
	cmdReset:    "Reset the peripherals",
	cmdHelp:     "List commands or print help for a command",
	cmdQuit:     "Leave the monitor",
}
