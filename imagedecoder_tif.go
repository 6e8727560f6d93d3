// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import "bytes"

var (
	tiffMagicIntel    = []byte("II*\x00")
	tiffMagicMotorola = []byte("MM\x00*")
)

func isTIFF(header []byte) bool {
	if len(header) < 4 {
		return false
	}
	return bytes.Equal(header[:4], tiffMagicIntel) || bytes.Equal(header[:4], tiffMagicMotorola)
}

type imageDecoderTIF struct {
	*baseStreamingDecoder
}

// locate returns the TIFF header itself: the metadata block starts at 0
// and the first byte is the endianness marker.
func (e *imageDecoderTIF) locate() (Location, error) {
	b, err := e.src.ByteAt(0)
	if err != nil {
		return Location{}, err
	}
	loc := Location{Format: TIFF, Offset: 0, Endian: Endian(b)}
	e.opts.Debugf("TIFF header, endian format is %c (%s)", b, loc.Endian)
	return loc, nil
}
