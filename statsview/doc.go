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


// Package statsview is an optional package. The runtime statistics server is
// only available when the program is built with the statsview build tag.
// Without the tag the Launch() function does nothing and Available() returns
// false.
//
// The server is provided by github.com/go-echarts/statsview. After launch the
// graphical statistics are viewable at:
//
//	localhost:12840/debug/statsview
//
// And the standard Go pprof statistics are available at:
//
//	localhost:12840/debug/pprof/
package statsview

// Address is the address of the statistics server.
const Address = "localhost:12840"

const url = "/debug/statsview"
