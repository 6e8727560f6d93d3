// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"fmt"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

// makerNoteAt is where makerNoteTIFF stores the maker note data.
const makerNoteAt = 100

// makerNoteTIFF builds a file with the given camera make and maker note.
func makerNoteTIFF(le bool, cameraMake string, note []byte) []byte {
	t := newTestTIFF(le)
	t.ifd(8, 0, 40,
		t.ascii(0x010F, cameraMake),
		t.long(tagExifOffset, 80),
	)
	t.ifd(80, 0, makerNoteAt, t.undefined(tagMakerNote, note))
	return t.bytes()
}

// noteIFD renders a maker note directory.
// Out of line values follow it, addressed as ptrBase plus the position after the directory start.
func noteIFD(le bool, ptrBase int, entries ...testEntry) []byte {
	t := &testTIFF{le: le, ptrBase: ptrBase}
	t.ifd(0, 0, 2+12*len(entries)+4, entries...)
	return t.buf
}

func concat(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

func makerNoteTags(c *qt.C, b []byte, opts Options) map[string]string {
	res, err := decodeBytes(b, opts)
	c.Assert(err, qt.IsNil)
	m := make(map[string]string)
	for k, v := range res.Tags {
		if strings.HasPrefix(k, makerNoteDir+" ") {
			m[k] = v.Printable()
		}
	}
	return m
}

func TestMakerNoteNikon(t *testing.T) {
	c := qt.New(t)

	for _, le := range []bool{true, false} {
		tf := &testTIFF{le: le}

		c.Run(fmt.Sprintf("Type 1/le=%t", le), func(c *qt.C) {
			note := concat(
				[]byte("Nikon\x00\x01\x00"),
				noteIFD(le, makerNoteAt+8,
					tf.short(0x0003, 3),
					tf.short(0x0004, 1),
				),
			)
			tags := makerNoteTags(c, makerNoteTIFF(le, "NIKON", note), Options{})
			c.Assert(tags, qt.DeepEquals, map[string]string{
				"MakerNote Quality":   "VGA Fine",
				"MakerNote ColorMode": "Color",
			})
		})

		c.Run(fmt.Sprintf("Type 2 labeled/le=%t", le), func(c *qt.C) {
			header := []byte("MM\x00*\x00\x00\x00\x08")
			if le {
				header = []byte("II*\x00\x08\x00\x00\x00")
			}
			note := concat(
				[]byte("Nikon\x00\x02\x10\x00\x00"),
				header,
				noteIFD(le, 8,
					tf.short(0x0002, 0, 200),
					testEntry{tag: 0x000D, typ: Undefined, count: 4, data: []byte{252, 1, 6, 0}},
					tf.rational(0x0084, 18, 1, 55, 1, 35, 10, 56, 10),
				),
			)
			tags := makerNoteTags(c, makerNoteTIFF(le, "NIKON CORPORATION", note), Options{})
			c.Assert(tags, qt.DeepEquals, map[string]string{
				"MakerNote ISOSetting":                 "[0, 200]",
				"MakerNote ProgramShift":               "-2/3 EV",
				"MakerNote LensMinMaxFocalMaxAperture": "[18, 55, 7/2, 28/5]",
			})
		})

		c.Run(fmt.Sprintf("Type 2 labeled FakeEXIF/le=%t", le), func(c *qt.C) {
			header := []byte("MM\x00*\x00\x00\x00\x08")
			if le {
				header = []byte("II*\x00\x08\x00\x00\x00")
			}
			// Pointers written 18 bytes short of their target.
			note := concat(
				[]byte("Nikon\x00\x02\x10\x00\x00"),
				header,
				noteIFD(le, 8-18,
					tf.short(0x0002, 0, 400),
					tf.rational(0x0084, 18, 1, 55, 1, 35, 10, 56, 10),
				),
			)
			b := makerNoteTIFF(le, "NIKON CORPORATION", note)
			c.Assert(makerNoteTags(c, b, Options{FakeEXIF: true}), qt.DeepEquals, map[string]string{
				"MakerNote ISOSetting":                 "[0, 400]",
				"MakerNote LensMinMaxFocalMaxAperture": "[18, 55, 7/2, 28/5]",
			})

			res, err := decodeBytes(b, Options{})
			c.Assert(err, qt.IsNil)
			c.Assert(res.Tags["MakerNote LensMinMaxFocalMaxAperture"].Printable(), qt.Not(qt.Equals), "[18, 55, 7/2, 28/5]")
		})

		c.Run(fmt.Sprintf("Type 2 unlabeled/le=%t", le), func(c *qt.C) {
			note := noteIFD(le, makerNoteAt,
				tf.ascii(0x0004, "FINE"),
				tf.short(0x0087, 9),
			)
			tags := makerNoteTags(c, makerNoteTIFF(le, "NIKON", note), Options{})
			c.Assert(tags, qt.DeepEquals, map[string]string{
				"MakerNote Quality":   "FINE",
				"MakerNote FlashMode": "Fired, TTL Mode",
			})
		})
	}

	c.Run("Missing marker", func(c *qt.C) {
		tf := &testTIFF{le: true}
		note := concat(
			[]byte("Nikon\x00\x02\x10\x00\x00"),
			[]byte("XX\x00\x00\x08\x00\x00\x00"),
			noteIFD(true, 8, tf.short(0x0002, 0, 200)),
		)
		b := makerNoteTIFF(true, "NIKON", note)

		res, err := decodeBytes(b, Options{})
		c.Assert(IsInvalidFormat(err), qt.IsTrue)
		c.Assert(err, qt.ErrorMatches, ".*missing marker tag 42 in Nikon maker note")
		c.Assert(res.Tags, qt.IsNil)

		// Maker notes are not decoded in quick mode.
		res, err = decodeBytes(b, Options{Quick: true})
		c.Assert(err, qt.IsNil)
		c.Assert(res.Tags.Keys(), qt.DeepEquals, []string{"Image ExifOffset", "Image Make"})
	})
}

func TestMakerNoteOlympus(t *testing.T) {
	c := qt.New(t)

	tf := &testTIFF{le: false}
	note := concat(
		[]byte("OLYMP\x00\x01\x00"),
		noteIFD(false, makerNoteAt+8,
			tf.long(0x0200, 0, 1, 0),
			tf.short(0x0201, 2),
		),
	)
	tags := makerNoteTags(c, makerNoteTIFF(false, "OLYMPUS OPTICAL CO.,LTD", note), Options{})
	c.Assert(tags, qt.DeepEquals, map[string]string{
		"MakerNote SpecialMode": "Normal - sequence 1 - Non-panoramic",
		"MakerNote JPEGQual":    "HQ",
	})
}

func TestMakerNoteCasio(t *testing.T) {
	c := qt.New(t)

	tf := &testTIFF{le: false}
	note := noteIFD(false, makerNoteAt,
		tf.short(0x0001, 5),
		tf.short(0x0002, 3),
		tf.short(0x0014, 250),
	)
	for _, cameraMake := range []string{"CASIO COMPUTER CO.,LTD.", "Casio"} {
		tags := makerNoteTags(c, makerNoteTIFF(false, cameraMake, note), Options{})
		c.Assert(tags, qt.DeepEquals, map[string]string{
			"MakerNote RecordingMode": "Landscape",
			"MakerNote Quality":       "Fine",
			"MakerNote CCDSpeed":      "+2.0",
		})
	}
}

func TestMakerNoteFujifilm(t *testing.T) {
	c := qt.New(t)

	// The maker note is little-endian even in a big-endian file.
	tf := &testTIFF{le: true}
	entries := []testEntry{
		tf.undefined(0x0000, []byte("0130")),
		tf.short(0x1001, 3),
		tf.ascii(0x1000, "NORMAL"),
	}
	note := concat(
		[]byte("FUJIFILM\x0c\x00\x00\x00"),
		noteIFD(true, 12, entries...),
	)

	res, err := decodeBytes(makerNoteTIFF(false, "FUJIFILM", note), Options{})
	c.Assert(err, qt.IsNil)
	c.Assert(printables(res.Tags), qt.DeepEquals, map[string]string{
		"Image Make":            "FUJIFILM",
		"Image ExifOffset":      "80",
		"EXIF MakerNote":        res.Tags["EXIF MakerNote"].Printable(),
		"MakerNote NoteVersion": "0130",
		"MakerNote Sharpness":   "Normal",
		"MakerNote Quality":     "NORMAL",
	})

	// Offsets are relative to the start of the metadata block.
	quality := res.Tags["MakerNote Quality"]
	c.Assert(quality.Offset, qt.Equals, int64(makerNoteAt+12+2+12*len(entries)+4))
	c.Assert(quality.Length, qt.Equals, int64(7))
}

func TestMakerNoteCanon(t *testing.T) {
	c := qt.New(t)

	for _, le := range []bool{true, false} {
		tf := &testTIFF{le: le}
		note := noteIFD(le, makerNoteAt,
			tf.short(0x0001, 12, 2, 0, 5, 99, 1, 7),
			tf.short(0x0004, 0, 0, 0, 0, 0, 0, 9, 3),
			tf.ascii(0x0006, "IMG:PowerShot JPEG"),
		)

		res, err := decodeBytes(makerNoteTIFF(le, "Canon", note), Options{})
		c.Assert(err, qt.IsNil)

		c.Assert(res.Tags["MakerNote ImageType"].Printable(), qt.Equals, "IMG:PowerShot JPEG")
		c.Assert(res.Tags["MakerNote Tag 0x0001"].Values, qt.HasLen, 7)

		derived := make(map[string]string)
		for k, v := range res.Tags {
			if v.Derived {
				c.Assert(v.Type, qt.Equals, Proprietary)
				c.Assert(v.Values, qt.HasLen, 1)
				derived[k] = v.Printable()
			}
		}
		c.Assert(derived, qt.DeepEquals, map[string]string{
			"MakerNote Macromode":           "Normal",
			"MakerNote SelfTimer":           "0",
			"MakerNote Quality":             "Superfine",
			"MakerNote FlashMode":           "Unknown",
			"MakerNote ContinuousDriveMode": "Continuous",
			"MakerNote WhiteBalance":        "Tungsten",
			"MakerNote Unknown":             "9",
		})
	}
}

func TestMakerNoteUnknownMake(t *testing.T) {
	c := qt.New(t)

	tf := &testTIFF{le: true}
	note := noteIFD(true, makerNoteAt, tf.short(0x0001, 5))
	tags := makerNoteTags(c, makerNoteTIFF(true, "ACME", note), Options{})
	c.Assert(tags, qt.HasLen, 0)
}
