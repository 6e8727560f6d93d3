// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"bytes"
	"fmt"
)

const (
	markerSOI   = 0xffd8
	markerAPP0  = 0xffe0
	markerAPP1  = 0xffe1
	markerAPP2  = 0xffe2
	markerAPP12 = 0xffec
	markerAPP14 = 0xffee
	markerDQT   = 0xffdb
)

// Leading segments with these codes are skipped before the segment scan.
var jpegPreambleCodes = [][]byte{
	[]byte("JFIF"),
	[]byte("JFXX"),
	[]byte("OLYM"),
	[]byte("Phot"),
}

var (
	codeExif  = []byte("Exif")
	codeDucky = []byte("Ducky")
	codeAdobe = []byte("Adobe")
)

func isJPEG(header []byte) bool {
	return len(header) >= 2 && header[0] == 0xff && header[1] == 0xd8
}

type imageDecoderJPEG struct {
	*baseStreamingDecoder
}

// peek returns n bytes at off, or false if they are not all inside the source.
func (e *imageDecoderJPEG) peek(off, n int64) ([]byte, bool) {
	if off < 0 || off+n > e.src.Len() {
		return nil, false
	}
	b, err := e.src.Slice(off, off+n)
	if err != nil || int64(len(b)) != n {
		return nil, false
	}
	return b, true
}

func (e *imageDecoderJPEG) isPreamble(base int64) (int64, bool) {
	b, ok := e.peek(base, 8)
	if !ok || b[0] != 0xff {
		return 0, false
	}
	for _, code := range jpegPreambleCodes {
		if bytes.Equal(b[4:8], code) {
			return int64(b[2])<<8 | int64(b[3]), true
		}
	}
	return 0, false
}

// locate scans the JPEG segments for the one holding the Exif block.
func (e *imageDecoderJPEG) locate() (Location, error) {
	debugf := e.opts.Debugf
	debugf("JPEG format recognized")

	base := int64(2)

	// Skip the JFIF-like segments first.
	for {
		length, ok := e.isPreamble(base)
		if !ok {
			break
		}
		debugf("skipping %d byte preamble segment at 0x%X", length, base)
		base += length + 2
	}

	found := false
	for !found {
		b, ok := e.peek(base, 4)
		if !ok {
			debugf("ran past the end of the file at 0x%X", base)
			return Location{}, fmt.Errorf("%w: no Exif segment before end of file", ErrNoExifData)
		}
		code, _ := e.peek(base+4, 4)
		marker := uint16(b[0])<<8 | uint16(b[1])

		switch marker {
		case markerAPP1:
			debugf("APP1 at 0x%X, code %q", base, code)
			if bytes.Equal(code, codeExif) {
				// Back up to the pre-segment header, see below.
				base -= 2
				found = true
				continue
			}
		case markerDQT:
			debugf("JPEG image data at 0x%X, no more segments are expected", base)
		case markerAPP0, markerAPP2:
			debugf("APP%d at 0x%X, code %q", marker-markerAPP0, base, code)
		case markerAPP14:
			debugf("APP14 (Adobe segment) at 0x%X, code %q", base, code)
		case markerAPP12:
			debugf("APP12 XMP (Ducky) or Pictureinfo segment at 0x%X, code %q", base, code)
		case markerSOI:
			debugf("SOI segment at 0x%X", base)
		default:
			debugf("unexpected segment %X at 0x%X", marker, base)
		}

		if marker == markerDQT {
			break
		}

		base += (int64(b[2])<<8 | int64(b[3])) + 2
	}

	// base+2 is now the segment marker, base+6 the segment code.
	// The metadata starts after marker, length and the 6 byte Exif header.
	marker, ok := e.peek(base+2, 1)
	if !ok || marker[0] != 0xff {
		return Location{}, ErrNoExifData
	}
	head, _ := e.peek(base+6, 5)
	if head == nil {
		head, _ = e.peek(base+6, 4)
	}
	switch {
	case bytes.HasPrefix(head, codeExif):
	case bytes.Equal(head, codeDucky):
		debugf("Exif-like Ducky header at 0x%X", base)
	case bytes.Equal(head, codeAdobe):
		debugf("Exif-like Adobe header at 0x%X", base)
	default:
		debugf("no Exif header found, got %q", head)
		return Location{}, ErrNoExifData
	}

	offset := base + 12
	endian, ok := e.peek(offset, 1)
	if !ok {
		return Location{}, fmt.Errorf("%w: Exif header at end of file", ErrNoExifData)
	}

	loc := Location{Format: JPEG, Offset: offset, Endian: Endian(endian[0])}
	debugf("Exif block at 0x%X, endian format is %c (%s)", offset, endian[0], loc.Endian)
	return loc, nil
}
