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


package terminal

import (
	"os"
	"sync"

	"github.com/jetsetilly/gopher84/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DefaultWidth is returned by Width() if the output is not a terminal.
const DefaultWidth = 80

// Terminal wraps the input and output files of the monitor.
type Terminal struct {
	input  *os.File
	output *os.File

	// the input file is a terminal
	interactive bool

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// the mode functions can be called from the signal handler in the main
	// package
	mu sync.Mutex
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if input == nil {
		return nil, curated.Errorf("terminal: no input file")
	}
	if output == nil {
		return nil, curated.Errorf("terminal: no output file")
	}

	trm := &Terminal{
		input:       input,
		output:      output,
		interactive: term.IsTerminal(int(input.Fd())),
	}

	if trm.interactive {
		if err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr); err != nil {
			return nil, curated.Errorf("terminal: %v", err)
		}
		trm.cbreakAttr = trm.canAttr
		termios.Cfmakecbreak(&trm.cbreakAttr)
	}

	return trm, nil
}

// IsInteractive returns true if the input is a terminal.
func (trm *Terminal) IsInteractive() bool {
	return trm.interactive
}

// Width of the output terminal in characters.
func (trm *Terminal) Width() int {
	w, _, err := term.GetSize(int(trm.output.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// CanonicalMode puts the input terminal back into the mode it was in when
// the Terminal was created.
func (trm *Terminal) CanonicalMode() {
	trm.mu.Lock()
	defer trm.mu.Unlock()
	if trm.interactive {
		_ = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.canAttr)
	}
}

// CBreakMode puts the input terminal into cbreak mode.
func (trm *Terminal) CBreakMode() {
	trm.mu.Lock()
	defer trm.mu.Unlock()
	if trm.interactive {
		_ = termios.Tcsetattr(trm.input.Fd(), termios.TCIFLUSH, &trm.cbreakAttr)
	}
}

// Flush discards any typeahead.
func (trm *Terminal) Flush() error {
	if !trm.interactive {
		return nil
	}
	if err := termios.Tcflush(trm.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// WaitKey blocks until a single key is pressed. The key is discarded.
func (trm *Terminal) WaitKey() error {
	if !trm.interactive {
		return nil
	}

	if err := trm.Flush(); err != nil {
		return err
	}
	trm.CBreakMode()
	defer trm.CanonicalMode()

	b := make([]byte, 1)
	if _, err := trm.input.Read(b); err != nil {
		return curated.Errorf("terminal: %v", err)
	}

	return nil
}

// CleanUp restores the terminal to the mode it was in when the Terminal was
// created.
func (trm *Terminal) CleanUp() {
	trm.CanonicalMode()
}
