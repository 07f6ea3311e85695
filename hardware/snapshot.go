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


package hardware

// Snapshot the state of the devices. The register files are not included.
func (p *Peripherals) Snapshot() *Image {
	return &Image{
		Control: p.Control.Save(),
		USB:     p.USB.Save(),
	}
}

// Plumb a previously snapshotted state into the devices. The image is copied
// and can be plumbed again later.
//
// Data queued for the USB IN direction is dropped.
func (p *Peripherals) Plumb(img *Image) {
	if img == nil {
		panic("peripherals: cannot plumb in a nil image")
	}
	p.Control.Restore(img.Control)
	p.USB.Restore(img.USB)
}
