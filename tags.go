// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"maps"
	"slices"
	"strings"
)

// Tag is one decoded directory entry.
type Tag struct {
	// ID is the tag number. It's 0 for derived tags.
	ID uint16

	// Type is the field type of the entry.
	Type FieldType

	// Values holds int64, Rat[uint32] or Rat[int32] elements.
	// ASCII values are stored as one string.
	Values []any

	// Offset and Length locate the value data, relative to the start of the metadata block.
	Offset int64
	Length int64

	// Def is the table entry for this tag, nil if the tag is unknown or derived.
	Def *TagDef

	// Derived is set for tags that were computed from other tags rather than read from a directory.
	Derived bool
}

// Printable returns the display value of the tag.
func (t Tag) Printable() string {
	if t.Def != nil && t.Def.Format != nil {
		return t.Def.Format.format(t.Values)
	}
	return formatValues(t.Values)
}

func (t Tag) String() string {
	return t.Printable()
}

// Int returns the i'th value as an integer.
func (t Tag) Int(i int) (int64, bool) {
	if i < 0 || i >= len(t.Values) {
		return 0, false
	}
	return toInt64(t.Values[i])
}

// Bytes returns the raw bytes of a Byte, Undefined or ASCII tag.
func (t Tag) Bytes() []byte {
	if len(t.Values) == 1 {
		if s, ok := t.Values[0].(string); ok {
			return []byte(s)
		}
	}
	b := make([]byte, 0, len(t.Values))
	for _, v := range t.Values {
		if i, ok := toInt64(v); ok {
			b = append(b, byte(i))
		}
	}
	return b
}

// Tags maps "<directory> <tag name>" to a Tag, e.g. "EXIF DateTimeOriginal".
type Tags map[string]Tag

// Keys returns the keys sorted.
func (t Tags) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Get returns the tag named name in the directory dir.
func (t Tags) Get(dir, name string) (Tag, bool) {
	tag, found := t[dir+" "+name]
	return tag, found
}

// TagDef is a tag table entry.
type TagDef struct {
	Name string

	// Format is nil for tags shown as is.
	Format Formatter
}

// TagTable maps tag IDs to their definitions.
type TagTable map[uint16]*TagDef

// Formatter turns raw values into a display string.
// It's either a FormatFunc or a Lookup.
type Formatter interface {
	format(values []any) string
}

// FormatFunc formats the raw values of a tag.
type FormatFunc func(values []any) string

func (f FormatFunc) format(values []any) string {
	return f(values)
}

// Lookup maps raw integer values to labels.
// Values missing from the map are shown as is.
type Lookup map[int64]string

func (l Lookup) format(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if iv, ok := toInt64(v); ok {
			if s, found := l[iv]; found {
				parts[i] = s
				continue
			}
		}
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, ", ")
}
