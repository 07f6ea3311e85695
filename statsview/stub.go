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


//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch writes a message to output explaining that the statistics server is
// not available in this build.
func Launch(output io.Writer) {
	fmt.Fprintf(output, "stats server not available (build with the statsview tag)\n")
}

// Available returns false. The program was not built with the statsview tag.
func Available() bool {
	return false
}
