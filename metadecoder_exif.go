// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/encoding/charmap"
)

const (
	// Guard against corrupt counts. MakerNotes are exempt.
	maxValuesPerTag = 1000

	tagNameMakerNote = "MakerNote"
)

// directory is one IFD decoding frame.
type directory struct {
	// offset is relative to the current base.
	offset int64
	name   string
	table  TagTable

	// relative is set when out of line values are addressed
	// relative to the directory instead of the metadata block.
	relative bool
}

type dirKey struct {
	name   string
	offset int64
}

func newMetaDecoderEXIF(base *baseStreamingDecoder, loc Location) *metaDecoderEXIF {
	return &metaDecoderEXIF{
		streamReader: newStreamReader(base.src, loc.Endian, loc.Offset),
		opts:         base.opts,
		metaBase:     loc.Offset,
		tags:         make(Tags),
		thumbnails:   make(map[string][]byte),
		decodedDirs:  make(map[dirKey]bool),
		thumbIFD:     -1,
	}
}

type metaDecoderEXIF struct {
	*streamReader

	opts Options

	// metaBase is where the TIFF header starts.
	// The streamReader base differs from this while decoding a Fujifilm maker note.
	metaBase int64

	tags       Tags
	thumbnails map[string][]byte
	thumbIFD   int64

	// decodedDirs holds every directory decoded so far, keyed by
	// name and absolute offset.
	decodedDirs map[dirKey]bool
	numEntries  uint32
	limitHit    bool

	warnings *multierror.Error
}

func (e *metaDecoderEXIF) warnf(format string, args ...any) {
	e.warnings = multierror.Append(e.warnings, fmt.Errorf(format, args...))
	e.opts.Warnf(format, args...)
}

// outOfBounds reports data that points outside the file.
// It's an error in strict mode and a warning otherwise.
func (e *metaDecoderEXIF) outOfBounds(format string, args ...any) error {
	if e.opts.Strict {
		return newInvalidFormatErrorf(format, args...)
	}
	e.warnf(format, args...)
	return nil
}

func ifdName(i int) string {
	switch i {
	case 0:
		return "Image"
	case 1:
		return "Thumbnail"
	default:
		return fmt.Sprintf("IFD %d", i)
	}
}

func (e *metaDecoderEXIF) decode() error {
	walker := newIFDWalker(e)

	for i := 0; ; i++ {
		ifd, ok := walker.next()
		if !ok {
			break
		}
		name := ifdName(i)
		if i == 1 {
			e.thumbIFD = ifd
		}
		e.opts.Debugf("IFD %d (%s) at offset %d", i, name, ifd)

		if err := e.decodeTags(directory{offset: ifd, name: name, table: EXIFTags}); err != nil {
			return err
		}

		if off, ok := e.pointer(name + " ExifOffset"); ok {
			e.opts.Debugf("EXIF SubIFD at offset %d", off)
			if err := e.decodeTags(directory{offset: off, name: "EXIF", table: EXIFTags}); err != nil {
				return err
			}

			off, ok := e.pointer("EXIF SubIFD InteroperabilityOffset")
			if !ok {
				off, ok = e.pointer("EXIF InteroperabilityOffset")
			}
			if ok {
				e.opts.Debugf("EXIF Interoperability SubSubIFD at offset %d", off)
				if err := e.decodeTags(directory{offset: off, name: "EXIF Interoperability", table: InteropTags}); err != nil {
					return err
				}
			}
		}

		if off, ok := e.pointer(name + " GPSInfo"); ok {
			e.opts.Debugf("GPS SubIFD at offset %d", off)
			if err := e.decodeTags(directory{offset: off, name: "GPS", table: GPSTags}); err != nil {
				return err
			}
		}
	}

	if err := e.extractThumbnails(); err != nil {
		return err
	}

	if !e.opts.Quick {
		_, hasNote := e.tags["EXIF MakerNote"]
		_, hasMake := e.tags["Image Make"]
		if hasNote && hasMake {
			if err := e.decodeMakerNote(); err != nil {
				return err
			}
		}
	}

	return e.extractMakerNoteThumbnail()
}

// pointer returns the first value of the named tag if it looks like an offset.
func (e *metaDecoderEXIF) pointer(key string) (int64, bool) {
	tag, found := e.tags[key]
	if !found {
		return 0, false
	}
	v, ok := tag.Int(0)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// decodeTags decodes all entries in dir into e.tags.
// A directory already decoded under the same name is skipped,
// as is everything once Options.LimitNumTags entries have been read.
func (e *metaDecoderEXIF) decodeTags(dir directory) error {
	if e.limitHit {
		return nil
	}
	key := dirKey{name: dir.name, offset: e.base + dir.offset}
	if e.decodedDirs[key] {
		e.opts.Debugf("directory %s at offset %d already decoded", dir.name, dir.offset)
		return nil
	}
	e.decodedDirs[key] = true

	if !e.fits(dir.offset, 2) {
		return e.outOfBounds("directory %s at offset %d is outside the file", dir.name, dir.offset)
	}
	count := int64(e.read2(dir.offset))

	if !e.fits(dir.offset+2, count*12) {
		fitting := (e.src.Len() - e.base - dir.offset - 2) / 12
		if err := e.outOfBounds("directory %s at offset %d declares %d entries, only %d fit in the file", dir.name, dir.offset, count, fitting); err != nil {
			return err
		}
		count = fitting
	} else if !e.fits(dir.offset+2+count*12, 4) {
		if err := e.outOfBounds("next directory pointer of %s at offset %d is outside the file", dir.name, dir.offset); err != nil {
			return err
		}
	}

	if remaining := int64(e.opts.LimitNumTags) - int64(e.numEntries); count > remaining {
		if e.opts.Strict {
			return newInvalidFormatErrorf("more than %d directory entries", e.opts.LimitNumTags)
		}
		e.warnf("more than %d directory entries, stopping", e.opts.LimitNumTags)
		e.limitHit = true
		count = remaining
	}
	e.numEntries += uint32(count)

	for i := range count {
		if err := e.decodeTag(dir, dir.offset+2+12*i); err != nil {
			return err
		}
	}

	return nil
}

// A tag is represented in 12 bytes:
//   - 2 bytes for the tag ID
//   - 2 bytes for the data type
//   - 4 bytes for the number of data values of the specified type
//   - 4 bytes for the value itself, if it fits, otherwise for a pointer to another location where the data may be found;
//     this could be a pointer to the beginning of another IFD.
func (e *metaDecoderEXIF) decodeTag(dir directory, entry int64) error {
	tagID := e.read2(entry)

	def := dir.table[tagID]
	tagName := fmt.Sprintf("Tag 0x%04X", tagID)
	if def != nil {
		tagName = def.Name
	}

	if e.opts.Quick && ignoreTags[tagID] {
		return nil
	}

	typ := FieldType(e.read2(entry + 2))
	if !typ.Known() {
		if e.opts.Strict {
			return newInvalidFormatErrorf("unknown type %d in tag 0x%04X", typ, tagID)
		}
		e.warnf("unknown type %d in tag 0x%04X", typ, tagID)
		return nil
	}

	size := int64(typ.Size())
	count := int64(e.read4(entry + 4))

	offset := entry + 8
	if count*size > 4 {
		ptr := int64(e.read4(offset))
		if dir.relative {
			offset = ptr + dir.offset - 8
			if e.opts.FakeEXIF {
				offset += 18
			}
		} else {
			offset = ptr
		}
	}

	if typ != ASCII && count > maxValuesPerTag && tagName != tagNameMakerNote {
		e.warnf("tag %s has %d values, limiting to %d", tagName, count, maxValuesPerTag)
		count = maxValuesPerTag
	}

	length := count * size
	if !e.fits(offset, length) {
		return e.outOfBounds("value of tag %s in %s (%d bytes at offset %d) is outside the file", tagName, dir.name, length, offset)
	}

	var values []any
	if typ == ASCII {
		if count > 0 {
			values = []any{e.decodeASCII(trimAtNull(e.readBytesVolatile(offset, int(count))))}
		}
	} else {
		values = e.decodeValues(typ, offset, count)
	}

	key := dir.name + " " + tagName
	e.tags[key] = Tag{
		ID:     tagID,
		Type:   typ,
		Values: values,
		Offset: offset + e.base - e.metaBase,
		Length: length,
		Def:    def,
	}
	e.opts.Debugf("added tag %s (%s, %d values at offset %d)", key, typ, len(values), offset)

	return nil
}

func (e *metaDecoderEXIF) decodeValues(typ FieldType, offset, count int64) []any {
	size := int64(typ.Size())
	if size == 0 {
		// Proprietary values carry no data.
		return nil
	}
	data := e.readBytesVolatile(offset, int(count*size))
	signed := typ.IsSigned()
	le := e.order.LittleEndian()

	values := make([]any, count)
	for i := range count {
		b := data[i*size : (i+1)*size]
		if typ.isRational() {
			num, _ := DecodeInt(b[:4], signed, le)
			den, _ := DecodeInt(b[4:], signed, le)
			if signed {
				values[i] = NewRat(int32(num), int32(den))
			} else {
				values[i] = NewRat(uint32(num), uint32(den))
			}
			continue
		}
		v, err := DecodeInt(b, signed, le)
		if err != nil {
			e.stop(err)
		}
		values[i] = v
	}
	return values
}

// decodeASCII returns b as a string.
// Bytes that are not valid UTF-8 are read as ISO 8859-1.
func (e *metaDecoderEXIF) decodeASCII(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

func (e *metaDecoderEXIF) result() (Tags, map[string][]byte, error) {
	return e.tags, e.thumbnails, e.warnings.ErrorOrNil()
}

// ifdWalker follows the chain of IFD next pointers.
// It stops on a zero pointer, a directory that points to itself, a directory
// already visited or a directory that does not fit in the file.
type ifdWalker struct {
	e *metaDecoderEXIF

	visited map[int64]bool
	current int64
	started bool
}

func newIFDWalker(e *metaDecoderEXIF) *ifdWalker {
	return &ifdWalker{
		e:       e,
		visited: make(map[int64]bool),
	}
}

func (w *ifdWalker) next() (int64, bool) {
	var ifd int64
	if !w.started {
		w.started = true
		if !w.e.fits(4, 4) {
			return 0, false
		}
		ifd = int64(w.e.read4(4))
	} else {
		ifd = w.nextPointer(w.current)
	}

	if ifd == 0 || w.visited[ifd] {
		if ifd != 0 {
			w.e.opts.Debugf("IFD chain loops back to offset %d", ifd)
		}
		return 0, false
	}
	w.visited[ifd] = true
	w.current = ifd
	return ifd, true
}

func (w *ifdWalker) nextPointer(ifd int64) int64 {
	e := w.e
	if !e.fits(ifd, 2) {
		return 0
	}
	entries := int64(e.read2(ifd))
	at := ifd + 2 + 12*entries
	if !e.fits(at, 4) {
		return 0
	}
	next := int64(e.read4(at))
	if next == ifd {
		return 0
	}
	return next
}
