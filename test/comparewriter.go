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


package test

import "strings"

// CompareWriter collects everything written to it so that command output can
// be checked against what a test expects.
type CompareWriter struct {
	sb strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.sb.Write(p)
}

// Clear discards everything written so far.
func (tw *CompareWriter) Clear() {
	tw.sb.Reset()
}

// Compare returns true if the collected output is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.sb.String() == s
}

// Lines splits the collected output on newlines. A final newline does not
// produce an empty line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.sb.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return tw.sb.String()
}
