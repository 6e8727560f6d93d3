// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/image/tiff"
)

var thumbnailPixels = []byte{
	255, 0, 0, 0, 255, 0,
	0, 0, 255, 10, 20, 30,
}

// uncompressedThumbnailTIFF builds a file with a 2x2 RGB thumbnail in IFD1.
func uncompressedThumbnailTIFF(le, shortStrips bool) []byte {
	t := newTestTIFF(le)
	t.ifd(8, 100, 40, t.ascii(0x010F, "ACME"))

	strips := t.long(tagStripOffsets, 300)
	if shortStrips {
		strips = t.short(tagStripOffsets, 300)
	}
	t.ifd(100, 0, 220,
		t.short(0x0100, 2),
		t.short(0x0101, 2),
		t.short(0x0102, 8, 8, 8),
		t.short(0x0103, 1),
		t.short(0x0106, 2),
		strips,
		t.short(0x0115, 3),
		t.short(0x0116, 2),
		t.long(tagStripByteCounts, uint32(len(thumbnailPixels))),
	)
	t.putBytes(300, thumbnailPixels)
	return t.bytes()
}

func TestThumbnailTIFF(t *testing.T) {
	c := qt.New(t)

	for _, le := range []bool{true, false} {
		for _, shortStrips := range []bool{false, true} {
			c.Run(fmt.Sprintf("le=%t/short=%t", le, shortStrips), func(c *qt.C) {
				res, err := decodeBytes(uncompressedThumbnailTIFF(le, shortStrips), Options{})
				c.Assert(err, qt.IsNil)
				c.Assert(res.Warnings, qt.IsNil)
				c.Assert(res.Tags["Thumbnail Compression"].Printable(), qt.Equals, "Uncompressed TIFF")

				thumb, found := res.Thumbnails[ThumbnailTIFF]
				c.Assert(found, qt.IsTrue)
				_, found = res.Thumbnails[ThumbnailJPEG]
				c.Assert(found, qt.IsFalse)

				// Header, 9 entries, next pointer, BitsPerSample and the strip.
				c.Assert(thumb, qt.HasLen, 8+2+9*12+4+6+len(thumbnailPixels))
				c.Assert(thumb[len(thumb)-len(thumbnailPixels):], qt.DeepEquals, thumbnailPixels)

				img, err := tiff.Decode(bytes.NewReader(thumb))
				c.Assert(err, qt.IsNil)
				c.Assert(img.Bounds(), qt.Equals, image.Rect(0, 0, 2, 2))

				rgba := func(x, y int) color.RGBA {
					return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				}
				c.Assert(rgba(0, 0), qt.Equals, color.RGBA{255, 0, 0, 255})
				c.Assert(rgba(1, 0), qt.Equals, color.RGBA{0, 255, 0, 255})
				c.Assert(rgba(0, 1), qt.Equals, color.RGBA{0, 0, 255, 255})
				c.Assert(rgba(1, 1), qt.Equals, color.RGBA{10, 20, 30, 255})
			})
		}
	}
}

func TestThumbnailTIFFStripOutOfBounds(t *testing.T) {
	c := qt.New(t)

	b := uncompressedThumbnailTIFF(true, false)
	b = b[:300+4]

	res, err := decodeBytes(b, Options{})
	c.Assert(err, qt.IsNil)
	c.Assert(res.Thumbnails, qt.HasLen, 0)
	c.Assert(res.Warnings, qt.ErrorMatches, "(?s).*thumbnail strip 0 \\(12 bytes at offset 300\\) is outside the file.*")

	_, err = decodeBytes(b, Options{Strict: true})
	c.Assert(IsInvalidFormat(err), qt.IsTrue)
}

func encodeTestJPEG(c *qt.C) []byte {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 4)
	}
	var buf bytes.Buffer
	c.Assert(jpeg.Encode(&buf, img, nil), qt.IsNil)
	return buf.Bytes()
}

func TestThumbnailJPEG(t *testing.T) {
	c := qt.New(t)

	thumb := encodeTestJPEG(c)

	tf := newTestTIFF(false)
	tf.ifd(8, 100, 40, tf.ascii(0x010F, "ACME"))
	tf.ifd(100, 0, 200,
		tf.short(0x0103, 6),
		tf.long(tagJPEGInterchangeFormat, 200),
		tf.long(tagJPEGInterchangeFormatLength, uint32(len(thumb))),
	)
	tf.putBytes(200, thumb)

	for _, b := range [][]byte{tf.bytes(), wrapJPEG(tf.bytes(), jfifSegment)} {
		res, err := decodeBytes(b, Options{})
		c.Assert(err, qt.IsNil)
		c.Assert(res.Thumbnails[ThumbnailJPEG], qt.DeepEquals, thumb)

		img, err := jpeg.Decode(bytes.NewReader(res.Thumbnails[ThumbnailJPEG]))
		c.Assert(err, qt.IsNil)
		c.Assert(img.Bounds(), qt.Equals, image.Rect(0, 0, 8, 8))
	}

	c.Run("Out of bounds", func(c *qt.C) {
		tf := newTestTIFF(true)
		tf.ifd(8, 100, 40, tf.ascii(0x010F, "ACME"))
		tf.ifd(100, 0, 200,
			tf.long(tagJPEGInterchangeFormat, 5000),
			tf.long(tagJPEGInterchangeFormatLength, 100),
		)

		res, err := decodeBytes(tf.bytes(), Options{})
		c.Assert(err, qt.IsNil)
		c.Assert(res.Thumbnails, qt.HasLen, 0)
		c.Assert(res.Warnings, qt.IsNotNil)

		_, err = decodeBytes(tf.bytes(), Options{Strict: true})
		c.Assert(IsInvalidFormat(err), qt.IsTrue)
	})
}

func TestThumbnailMakerNote(t *testing.T) {
	c := qt.New(t)

	thumb := encodeTestJPEG(c)
	tf := &testTIFF{le: true}
	note := concat(
		[]byte("OLYMP\x00\x01\x00"),
		noteIFD(true, makerNoteAt+8, tf.undefined(0x0100, thumb)),
	)
	b := makerNoteTIFF(true, "OLYMPUS IMAGING CORP.", note)

	res, err := decodeBytes(b, Options{})
	c.Assert(err, qt.IsNil)
	c.Assert(res.Thumbnails[ThumbnailJPEG], qt.DeepEquals, thumb)

	// No maker note decoding, no thumbnail.
	res, err = decodeBytes(b, Options{Quick: true})
	c.Assert(err, qt.IsNil)
	c.Assert(res.Thumbnails, qt.HasLen, 0)
}

func TestThumbnailBuilderPatch(t *testing.T) {
	c := qt.New(t)

	b := &thumbnailBuilder{order: Motorola}
	b.append(make([]byte, 6))
	c.Assert(b.patch(2, 0x0102, 2), qt.IsNil)
	c.Assert(b.patch(2, 0x01020304, 4), qt.IsNil)
	c.Assert(b.buf, qt.DeepEquals, []byte{0, 0, 1, 2, 3, 4})
	c.Assert(b.patch(4, 1, 4), qt.ErrorIs, ErrIndexOutOfRange)
	c.Assert(b.patch(0, 70000, 2), qt.ErrorIs, ErrValueOutOfRange)

	b = &thumbnailBuilder{order: Intel}
	b.append(make([]byte, 4))
	c.Assert(b.patch(0, 0x0102, 2), qt.IsNil)
	c.Assert(b.buf, qt.DeepEquals, []byte{2, 1, 0, 0})
}
