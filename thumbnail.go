// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import "fmt"

const (
	// ThumbnailJPEG is the Thumbnails key of an embedded JPEG thumbnail.
	ThumbnailJPEG = "JPEGThumbnail"
	// ThumbnailTIFF is the Thumbnails key of a rebuilt uncompressed TIFF thumbnail.
	ThumbnailTIFF = "TIFFThumbnail"
)

// thumbnailBuilder assembles a standalone TIFF file.
type thumbnailBuilder struct {
	buf   []byte
	order Endian
}

func (b *thumbnailBuilder) len() int64 {
	return int64(len(b.buf))
}

func (b *thumbnailBuilder) append(p []byte) {
	b.buf = append(b.buf, p...)
}

// patch writes v as an unsigned integer of width bytes at off.
func (b *thumbnailBuilder) patch(off int64, v int64, width int) error {
	if off < 0 || off+int64(width) > b.len() {
		return fmt.Errorf("%w: patch at %d", ErrIndexOutOfRange, off)
	}
	p, err := EncodeInt(v, width, false, b.order.LittleEndian())
	if err != nil {
		return err
	}
	copy(b.buf[off:off+int64(width)], p)
	return nil
}

func (e *metaDecoderEXIF) extractThumbnails() error {
	if e.thumbIFD >= 0 {
		if c, found := e.tags["Thumbnail Compression"]; found && c.Printable() == "Uncompressed TIFF" {
			if err := e.extractTIFFThumbnail(); err != nil {
				return err
			}
		}
	}

	off, ok1 := e.tagInt("Thumbnail JPEGInterchangeFormat")
	size, ok2 := e.tagInt("Thumbnail JPEGInterchangeFormatLength")
	if !ok1 || !ok2 {
		return nil
	}
	if !e.fits(off, size) {
		return e.outOfBounds("JPEG thumbnail (%d bytes at offset %d) is outside the file", size, off)
	}
	e.thumbnails[ThumbnailJPEG] = e.readBytes(off, int(size))
	return nil
}

// extractMakerNoteThumbnail looks for a JPEG thumbnail hidden in the maker note.
// Uncompressed TIFF files are not allowed to carry one in the thumbnail IFD.
func (e *metaDecoderEXIF) extractMakerNoteThumbnail() error {
	if _, found := e.thumbnails[ThumbnailJPEG]; found {
		return nil
	}
	t, found := e.tags["MakerNote JPEGThumbnail"]
	if !found || t.Length == 0 {
		return nil
	}
	if !e.fits(t.Offset, t.Length) {
		return e.outOfBounds("maker note JPEG thumbnail (%d bytes at offset %d) is outside the file", t.Length, t.Offset)
	}
	e.thumbnails[ThumbnailJPEG] = e.readBytes(t.Offset, int(t.Length))
	return nil
}

func (e *metaDecoderEXIF) tagInt(key string) (int64, bool) {
	t, found := e.tags[key]
	if !found {
		return 0, false
	}
	return t.Int(0)
}

// extractTIFFThumbnail rebuilds the uncompressed thumbnail as a TIFF file:
// a header, a copy of the thumbnail IFD, the out of line values and the strips,
// with all pointers rewritten to the new layout.
func (e *metaDecoderEXIF) extractTIFFThumbnail() error {
	ifd := e.thumbIFD
	if !e.fits(ifd, 2) {
		return nil
	}
	entries := int64(e.read2(ifd))
	if !e.fits(ifd, entries*12+2) {
		return e.outOfBounds("thumbnail IFD at offset %d is outside the file", ifd)
	}

	b := &thumbnailBuilder{order: e.order}
	if e.order.LittleEndian() {
		b.append([]byte("II*\x00\x08\x00\x00\x00"))
	} else {
		b.append([]byte("MM\x00*\x00\x00\x00\x08"))
	}
	b.append(e.readBytes(ifd, int(entries*12+2)))
	b.append([]byte{0, 0, 0, 0})

	stripSlot, stripWidth := int64(-1), 0

	for i := range entries {
		entry := ifd + 2 + 12*i
		tag := e.read2(entry)
		typ := FieldType(e.read2(entry + 2))
		if !typ.Known() {
			e.warnf("unknown type %d in thumbnail tag 0x%04X", typ, tag)
			continue
		}
		width := typ.Size()
		length := int64(e.read4(entry+4)) * int64(width)
		oldOffset := int64(e.read4(entry + 8))

		// The value slot of entry i in the copy.
		slot := i*12 + 18

		if tag == tagStripOffsets {
			stripSlot, stripWidth = slot, width
		}

		if length <= 4 {
			continue
		}

		if !e.fits(oldOffset, length) {
			return e.outOfBounds("thumbnail tag 0x%04X (%d bytes at offset %d) is outside the file", tag, length, oldOffset)
		}

		newOffset := b.len()
		if err := b.patch(slot, newOffset, 4); err != nil {
			e.warnf("failed to rebuild TIFF thumbnail: %s", err)
			return nil
		}
		if tag == tagStripOffsets {
			stripSlot = newOffset
		}
		b.append(e.readBytes(oldOffset, int(length)))
	}

	offsets, found1 := e.tags["Thumbnail StripOffsets"]
	counts, found2 := e.tags["Thumbnail StripByteCounts"]
	if !found1 || !found2 || stripSlot < 0 || stripWidth == 0 {
		return nil
	}

	for i := range offsets.Values {
		off, ok1 := offsets.Int(i)
		size, ok2 := counts.Int(i)
		if !ok1 || !ok2 {
			break
		}
		if !e.fits(off, size) {
			return e.outOfBounds("thumbnail strip %d (%d bytes at offset %d) is outside the file", i, size, off)
		}
		if err := b.patch(stripSlot, b.len(), stripWidth); err != nil {
			e.warnf("failed to rebuild TIFF thumbnail: %s", err)
			return nil
		}
		stripSlot += int64(stripWidth)
		b.append(e.readBytes(off, int(size)))
	}

	e.thumbnails[ThumbnailTIFF] = b.buf
	return nil
}
