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

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/jetsetilly/gopher84/curated"
	"github.com/jetsetilly/gopher84/hardware/control"
	"github.com/jetsetilly/gopher84/hardware/usb"
)

// ImageMagic is the first four bytes of a binary image.
const ImageMagic = "G84I"

// Sentinal errors returned when reading an image.
const (
	WrongImageSize  = "image: wrong size (%d bytes, expected %d)"
	WrongImageMagic = "image: unrecognised magic (%q)"
	ImageFile       = "image: %v"
)

// Image is the saveable state of the peripherals. It is a fixed size record
// and is stored verbatim.
type Image struct {
	Control control.State
	USB     usb.State
}

// the size in bytes of a binary image
func imageSize() int {
	return len(ImageMagic) + binary.Size(Image{})
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (img *Image) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, imageSize()))
	buf.WriteString(ImageMagic)
	if err := binary.Write(buf, binary.LittleEndian, img); err != nil {
		return nil, curated.Errorf(ImageFile, err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (img *Image) UnmarshalBinary(data []byte) error {
	if len(data) != imageSize() {
		return curated.Errorf(WrongImageSize, len(data), imageSize())
	}
	if string(data[:len(ImageMagic)]) != ImageMagic {
		return curated.Errorf(WrongImageMagic, data[:len(ImageMagic)])
	}

	var n Image
	if err := binary.Read(bytes.NewReader(data[len(ImageMagic):]), binary.LittleEndian, &n); err != nil {
		return curated.Errorf(ImageFile, err)
	}
	*img = n

	return nil
}

// SaveImage writes a snapshot of the peripherals to the named file.
func (p *Peripherals) SaveImage(filename string) error {
	data, err := p.Snapshot().MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return curated.Errorf(ImageFile, err)
	}
	return nil
}

// LoadImage reads an image from the named file and plumbs it into the
// peripherals. The peripherals are unchanged if the file can not be read.
func (p *Peripherals) LoadImage(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(ImageFile, err)
	}

	var img Image
	if err := img.UnmarshalBinary(data); err != nil {
		return err
	}
	p.Plumb(&img)

	return nil
}
