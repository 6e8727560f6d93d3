// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import "fmt"

// FieldType is the type code of a directory entry.
type FieldType uint16

const (
	// Proprietary is not a real TIFF type. It's used for unknown and derived tags.
	Proprietary FieldType = iota
	Byte
	ASCII
	Short
	Long
	Rational
	SignedByte
	Undefined
	SignedShort
	SignedLong
	SignedRational
)

type fieldTypeInfo struct {
	size      int
	shortName string
	name      string
}

var fieldTypes = [...]fieldTypeInfo{
	Proprietary:    {0, "X", "Proprietary"},
	Byte:           {1, "B", "Byte"},
	ASCII:          {1, "A", "ASCII"},
	Short:          {2, "S", "Short"},
	Long:           {4, "L", "Long"},
	Rational:       {8, "R", "Ratio"},
	SignedByte:     {1, "SB", "Signed Byte"},
	Undefined:      {1, "U", "Undefined"},
	SignedShort:    {2, "SS", "Signed Short"},
	SignedLong:     {4, "SL", "Signed Long"},
	SignedRational: {8, "SR", "Signed Ratio"},
}

// Known reports whether t is one of the eleven field types.
func (t FieldType) Known() bool {
	return int(t) < len(fieldTypes)
}

// Size is the number of bytes used per element.
func (t FieldType) Size() int {
	if !t.Known() {
		return 0
	}
	return fieldTypes[t].size
}

func (t FieldType) ShortName() string {
	if !t.Known() {
		return "?"
	}
	return fieldTypes[t].shortName
}

// Name returns the display name, e.g. "Signed Short".
func (t FieldType) Name() string {
	if !t.Known() {
		return "unknown"
	}
	return fieldTypes[t].name
}

func (t FieldType) String() string {
	if !t.Known() {
		return fmt.Sprintf("FieldType(%d)", uint16(t))
	}
	return fieldTypes[t].name
}

// IsSigned reports whether elements of t are two's complement.
func (t FieldType) IsSigned() bool {
	switch t {
	case SignedByte, SignedShort, SignedLong, SignedRational:
		return true
	}
	return false
}

func (t FieldType) isRational() bool {
	return t == Rational || t == SignedRational
}
