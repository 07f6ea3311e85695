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


// Package paths resolves the location of files that gopher84 keeps between
// sessions, the preferences file being the main one.
//
// A directory named ".gopher84" in the current working directory takes
// precedence. Without it the files are kept under the user's configuration
// directory as reported by os.UserConfigDir(). For example, on Linux:
//
//	d, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//	// d == "/home/user/.config/gopher84/preferences"
package paths
