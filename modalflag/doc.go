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


// Package modalflag wraps the flag package from the standard library so that
// a program can be divided into modes, each with its own set of flags.
//
// Arguments are given to the Modes type with NewArgs() and parsed with
// Parse(). Sub-modes are named with AddSubModes() before the call to Parse().
// The first argument after the flags is checked against the list of
// sub-modes and, if it matches, becomes the current Mode(). The first
// sub-mode in the list is the default.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "DUMP")
//	logging := md.AddBool("log", false, "echo log to the terminal")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "DUMP":
//		md.NewMode()
//		...
//	}
//
// Each call to NewMode() starts a new set of flags that apply to the
// arguments that follow the mode selector. Mode comparisons are case
// insensitive.
package modalflag
