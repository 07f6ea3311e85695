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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	const UnboundRange = "port bus: range %s has no device"
//
//	e := curated.Errorf(UnboundRange, rng)
//
//	if curated.Is(e, UnboundRange) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("peripherals: %v", e)
//
//	if curated.Has(f, UnboundRange) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of curated errors as being 'expected' and
// uncurated errors as being 'unexpected'.
//
// The Error() function ensures that the error chain does not contain duplicate
// adjacent parts. Chains are thought of as being composed of parts separated
// by the sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan). So wrapping an error in a function that uses the same
// prefix as the function it called will not result in messages like:
//
//	image: image: wrong size
//
// Sentinel patterns should be stored as exported const strings, suitably named
// and commented, in the package that creates the error.
package curated
