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


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/environment"
	"github.com/jetsetilly/gopher84/hardware"
	"github.com/jetsetilly/gopher84/hardware/preferences"
	"github.com/jetsetilly/gopher84/logger"
	"github.com/jetsetilly/gopher84/modalflag"
	"github.com/jetsetilly/gopher84/monitor"
	"github.com/jetsetilly/gopher84/monitor/terminal"
	"github.com/jetsetilly/gopher84/prefs"
	"github.com/jetsetilly/gopher84/statsview"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// communication between the main() function and the launch() function.
type mainSync struct {
	// the launch() function has finished. the value is the exit value
	quit chan int

	// a function to call before exiting. used to put the terminal back into
	// canonical mode if the program is interrupted
	cleanup chan func()
}

func main() {
	sync := &mainSync{
		quit:    make(chan int),
		cleanup: make(chan func(), 1),
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	exitVal := exitOK
	var cleanup func()

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
		case f := <-sync.cleanup:
			cleanup = f
		case exitVal = <-sync.quit:
			done = true
		}
	}

	if cleanup != nil {
		cleanup()
	}
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("MONITOR", "DUMP")

	prefsArg := md.AddString("prefs", "", "preferences for this session only (key::value; key::value)")
	echoLog := md.AddBool("log", false, "echo log entries to the terminal")
	image := md.AddString("image", "", "snapshot image to load at start")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run the stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit <- exitOK
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit <- exitParseError
		return
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
	}

	if *echoLog {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "MONITOR":
		err = runMonitor(md, sync, *image)
	case "DUMP":
		err = dump(md, *image)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		sync.quit <- exitModeError
		return
	}

	sync.quit <- exitOK
}

func newEnvironment() (*environment.Environment, error) {
	prf, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}
	return environment.NewEnvironment(environment.MainEmulation, prf)
}

func runMonitor(md *modalflag.Modes, sync *mainSync, image string) error {
	md.NewMode()
	script := md.AddString("script", "", "file of commands to run before reading from the terminal")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := newEnvironment()
	if err != nil {
		return err
	}

	trm, err := terminal.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	sync.cleanup <- trm.CleanUp
	defer trm.CleanUp()

	mon, err := monitor.NewMonitor(env, os.Stdout)
	if err != nil {
		return err
	}
	mon.SetKeyer(trm)

	if image != "" {
		if err := mon.Peripherals.LoadImage(image); err != nil {
			return err
		}
	}

	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			return curated.Errorf("monitor: %v", err)
		}
		defer f.Close()

		if err := mon.Run(f, false); err != nil {
			return err
		}
		if mon.Quit() {
			return nil
		}
	}

	if err := trm.Flush(); err != nil {
		return err
	}

	return mon.Run(os.Stdin, trm.IsInteractive())
}

// dump renders a snapshot image as a Graphviz graph.
func dump(md *modalflag.Modes, image string) error {
	md.NewMode()
	md.AdditionalHelp("The image file is taken from the -image flag or the first argument")
	output := md.AddString("o", "", "write the graph to a file rather than stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if image == "" {
		image = md.GetArg(0)
	}
	if image == "" {
		return curated.Errorf("dump: no image file")
	}

	env, err := newEnvironment()
	if err != nil {
		return err
	}

	per, err := hardware.NewPeripherals(env, &monitor.StubCPU{}, &monitor.InterruptLog{}, nil)
	if err != nil {
		return err
	}
	if err := per.LoadImage(image); err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return curated.Errorf("dump: %v", err)
		}
		defer f.Close()
		w = f
	}

	memviz.Map(w, per.Snapshot())

	return nil
}
