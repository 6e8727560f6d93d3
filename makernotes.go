// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"bytes"
	"strings"
)

const makerNoteDir = "MakerNote"

var (
	nikonType1Label = []byte("Nikon\x00\x01")
	nikonType2Label = []byte("Nikon\x00\x02")
)

// decodeMakerNote decodes the vendor specific directory stored in the
// EXIF MakerNote tag. Makes we don't know are left as is.
//
// Most vendors store a plain IFD, but the start of it, the tag table and
// how its pointers are addressed differ.
func (e *metaDecoderEXIF) decodeMakerNote() error {
	note := e.tags["EXIF MakerNote"]
	cameraMake := e.makeString()

	e.opts.Debugf("maker note for make %q at offset %d", cameraMake, note.Offset)

	if strings.Contains(cameraMake, "NIKON") {
		return e.decodeNikonMakerNote(note)
	}

	if strings.HasPrefix(cameraMake, "OLYMPUS") {
		if err := e.decodeTags(directory{offset: note.Offset + 8, name: makerNoteDir, table: olympusTags}); err != nil {
			return err
		}
	}

	if strings.Contains(cameraMake, "CASIO") || strings.Contains(cameraMake, "Casio") {
		return e.decodeTags(directory{offset: note.Offset, name: makerNoteDir, table: casioTags})
	}

	switch cameraMake {
	case "FUJIFILM":
		return e.decodeFujifilmMakerNote(note)
	case "Canon":
		if err := e.decodeTags(directory{offset: note.Offset, name: makerNoteDir, table: canonTags}); err != nil {
			return err
		}
		e.decodeCanonArray("MakerNote Tag 0x0001", canonTag0x0001)
		e.decodeCanonArray("MakerNote Tag 0x0004", canonTag0x0004)
	}

	return nil
}

func (e *metaDecoderEXIF) makeString() string {
	t := e.tags["Image Make"]
	if len(t.Values) > 0 {
		if s, ok := t.Values[0].(string); ok {
			return s
		}
	}
	return t.Printable()
}

// The Nikon maker note usually starts with "Nikon" followed by the type as a short.
// Without the label it's a type 2 note (E99x, D1).
func (e *metaDecoderEXIF) decodeNikonMakerNote(note Tag) error {
	b := note.Bytes()
	switch {
	case bytes.HasPrefix(b, nikonType1Label):
		e.opts.Debugf("looks like a type 1 Nikon maker note")
		return e.decodeTags(directory{offset: note.Offset + 8, name: makerNoteDir, table: nikonOlderTags})
	case bytes.HasPrefix(b, nikonType2Label):
		e.opts.Debugf("looks like a labeled type 2 Nikon maker note")
		if len(b) < 14 || !(bytes.Equal(b[12:14], []byte{0, 42}) || bytes.Equal(b[12:14], []byte{42, 0})) {
			return newInvalidFormatErrorf("missing marker tag 42 in Nikon maker note")
		}
		// Skip the label and the TIFF header.
		return e.decodeTags(directory{offset: note.Offset + 10 + 8, name: makerNoteDir, table: nikonNewerTags, relative: true})
	default:
		e.opts.Debugf("looks like an unlabeled type 2 Nikon maker note")
		return e.decodeTags(directory{offset: note.Offset, name: makerNoteDir, table: nikonNewerTags})
	}
}

// The Fujifilm maker note is always little-endian, and its
// pointers are relative to the start of the note.
func (e *metaDecoderEXIF) decodeFujifilmMakerNote(note Tag) error {
	order, base := e.order, e.base
	defer func() {
		e.order, e.base = order, base
	}()
	e.order = Intel
	e.base += note.Offset
	return e.decodeTags(directory{offset: 12, name: makerNoteDir, table: fujifilmTags})
}

// decodeCanonArray splits the array tag key into one derived tag per known index.
func (e *metaDecoderEXIF) decodeCanonArray(key string, fields map[int]canonField) {
	t, found := e.tags[key]
	if !found {
		return
	}
	for i := 1; i < len(t.Values); i++ {
		field, ok := fields[i]
		name := "Unknown"
		if ok {
			name = field.name
		}

		var val string
		switch {
		case ok && field.values != nil:
			val = "Unknown"
			if v, ok := t.Int(i); ok {
				if s, found := field.values[v]; found {
					val = s
				}
			}
		default:
			val = formatValue(t.Values[i])
		}

		e.opts.Debugf("Canon %s[%d] %s = %s", key, i, name, val)
		e.tags[makerNoteDir+" "+name] = Tag{
			Type:    Proprietary,
			Values:  []any{val},
			Derived: true,
		}
	}
}
