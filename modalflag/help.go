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


package modalflag

import (
	"fmt"
	"strings"
)

// help prints the usage string produced by the flag package followed by the
// list of sub-modes and any additional help.
func (md *Modes) help(usage string) {
	if md.Output == nil {
		return
	}

	banner, defaults, _ := strings.Cut(usage, "\n")

	if defaults == "" && len(md.subModes) == 0 && md.additionalHelp == "" {
		fmt.Fprint(md.Output, "No help available")
		if p := md.Path(); p != "" {
			fmt.Fprintf(md.Output, " for %s", p)
		}
		fmt.Fprintln(md.Output)
		return
	}

	if p := md.Path(); p != "" {
		fmt.Fprintf(md.Output, "%s for %s mode\n", banner, p)
	} else {
		fmt.Fprintln(md.Output, banner)
	}
	fmt.Fprint(md.Output, defaults)

	if len(md.subModes) > 0 {
		if defaults != "" {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
