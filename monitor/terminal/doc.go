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


// Package terminal prepares the terminal used by the monitor. It records the
// canonical mode of the input terminal so that it can be restored on exit,
// offers a cbreak mode for single key prompts and reports the width of the
// output terminal.
//
// Files that are not terminals are accepted. In that case the mode functions
// do nothing and the width is the DefaultWidth.
package terminal
