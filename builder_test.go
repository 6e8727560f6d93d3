// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"bytes"
	"encoding/binary"
)

// testEntry is one entry in a synthetic directory.
// Values of up to 4 bytes are stored in the entry, others out of line.
type testEntry struct {
	tag   uint16
	typ   FieldType
	count uint32
	data  []byte

	// raw, if set, is written to the value field as is.
	raw []byte
}

// testTIFF builds a TIFF block byte by byte.
type testTIFF struct {
	le  bool
	buf []byte

	// ptrBase is added to every value pointer written.
	ptrBase int
}

func newTestTIFF(le bool) *testTIFF {
	t := &testTIFF{le: le}
	if le {
		t.buf = []byte("II*\x00\x08\x00\x00\x00")
	} else {
		t.buf = []byte("MM\x00*\x00\x00\x00\x08")
	}
	return t
}

func (t *testTIFF) order() binary.ByteOrder {
	if t.le {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (t *testTIFF) grow(n int) {
	if len(t.buf) < n {
		t.buf = append(t.buf, make([]byte, n-len(t.buf))...)
	}
}

func (t *testTIFF) put16(off int, v uint16) {
	t.grow(off + 2)
	t.order().PutUint16(t.buf[off:], v)
}

func (t *testTIFF) put32(off int, v uint32) {
	t.grow(off + 4)
	t.order().PutUint32(t.buf[off:], v)
}

func (t *testTIFF) putBytes(off int, b []byte) {
	t.grow(off + len(b))
	copy(t.buf[off:], b)
}

// ifd writes a directory at off, its out of line values from data on,
// and returns the offset after the last value.
func (t *testTIFF) ifd(off int, next uint32, data int, entries ...testEntry) int {
	t.put16(off, uint16(len(entries)))
	for i, e := range entries {
		at := off + 2 + 12*i
		t.put16(at, e.tag)
		t.put16(at+2, uint16(e.typ))
		t.put32(at+4, e.count)
		t.grow(at + 12)
		switch {
		case e.raw != nil:
			t.putBytes(at+8, e.raw)
		case len(e.data) <= 4:
			t.putBytes(at+8, e.data)
		default:
			t.put32(at+8, uint32(data+t.ptrBase))
			t.putBytes(data, e.data)
			data += len(e.data)
			if data%2 == 1 {
				data++
			}
		}
	}
	t.put32(off+2+12*len(entries), next)
	t.grow(data)
	return data
}

func (t *testTIFF) bytes() []byte {
	return bytes.Clone(t.buf)
}

func (t *testTIFF) short(tag uint16, vs ...uint16) testEntry {
	b := make([]byte, 2*len(vs))
	for i, v := range vs {
		t.order().PutUint16(b[2*i:], v)
	}
	return testEntry{tag: tag, typ: Short, count: uint32(len(vs)), data: b}
}

func (t *testTIFF) long(tag uint16, vs ...uint32) testEntry {
	b := make([]byte, 4*len(vs))
	for i, v := range vs {
		t.order().PutUint32(b[4*i:], v)
	}
	return testEntry{tag: tag, typ: Long, count: uint32(len(vs)), data: b}
}

// rational takes num, den pairs.
func (t *testTIFF) rational(tag uint16, pairs ...uint32) testEntry {
	e := t.long(tag, pairs...)
	e.typ = Rational
	e.count = uint32(len(pairs) / 2)
	return e
}

func (t *testTIFF) ascii(tag uint16, s string) testEntry {
	return testEntry{tag: tag, typ: ASCII, count: uint32(len(s) + 1), data: append([]byte(s), 0)}
}

func (t *testTIFF) undefined(tag uint16, b []byte) testEntry {
	return testEntry{tag: tag, typ: Undefined, count: uint32(len(b)), data: b}
}

// jfifSegment is a minimal APP0 JFIF segment.
var jfifSegment = []byte{
	0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01,
	0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
}

// wrapJPEG puts tiff in an APP1 Exif segment after SOI and the given segments.
func wrapJPEG(tiff []byte, segments ...[]byte) []byte {
	b := []byte{0xff, 0xd8}
	for _, seg := range segments {
		b = append(b, seg...)
	}
	payload := append([]byte("Exif\x00\x00"), tiff...)
	n := len(payload) + 2
	b = append(b, 0xff, 0xe1, byte(n>>8), byte(n))
	b = append(b, payload...)
	return append(b, jpegTail...)
}

// jpegTail is a DQT stub followed by EOI.
var jpegTail = []byte{0xff, 0xdb, 0x00, 0x04, 0x00, 0x00, 0xff, 0xd9}

func decodeBytes(b []byte, opts Options) (DecodeResult, error) {
	opts.R = bytes.NewReader(b)
	return Decode(opts)
}

// Fixed layout of sampleTIFF.
const (
	sampleIFD0    = 8
	sampleExif    = 200
	sampleInterop = 400
	sampleGPS     = 500
	sampleIFD1    = 700
	sampleThumb   = 900
)

var sampleJPEGThumbnail = []byte{0xff, 0xd8, 0xff, 0xdb, 0x00, 0x04, 0x01, 0x02, 0xff, 0xd9}

// sampleTIFF builds a block with the four standard directories and a JPEG thumbnail.
func sampleTIFF(le bool) *testTIFF {
	t := newTestTIFF(le)
	t.ifd(sampleIFD0, sampleIFD1, 100,
		t.ascii(0x010F, "ACME"),
		t.ascii(0x0110, "Roadrunner 3000"),
		t.short(0x0112, 1),
		t.rational(0x011A, 72, 1),
		t.short(0x0128, 2),
		t.long(tagExifOffset, sampleExif),
		t.long(tagGPSInfo, sampleGPS),
	)
	t.ifd(sampleExif, 0, 300,
		t.rational(0x829A, 1, 250),
		t.ascii(0x9003, "2024:01:02 03:04:05"),
		t.long(tagInteroperabilityOffset, sampleInterop),
	)
	t.ifd(sampleInterop, 0, 450,
		t.ascii(0x0001, "R98"),
	)
	t.ifd(sampleGPS, 0, 600,
		t.ascii(0x0001, "N"),
		t.rational(0x0002, 59, 1, 55, 1, 30, 50),
	)
	t.ifd(sampleIFD1, 0, 800,
		t.short(0x0103, 6),
		t.long(tagJPEGInterchangeFormat, sampleThumb),
		t.long(tagJPEGInterchangeFormatLength, uint32(len(sampleJPEGThumbnail))),
	)
	t.putBytes(sampleThumb, sampleJPEGThumbnail)
	return t
}
