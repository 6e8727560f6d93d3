// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"encoding/binary"
	"fmt"
)

// Endian is the single byte marker found at the start of a TIFF header.
type Endian byte

const (
	// Intel is little-endian ("II").
	Intel Endian = 'I'
	// Motorola is big-endian ("MM").
	Motorola Endian = 'M'
)

// ByteOrder returns the byte order for e.
// Anything but Intel is read as big-endian.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == Intel {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// LittleEndian reports whether e is Intel.
func (e Endian) LittleEndian() bool {
	return e == Intel
}

func (e Endian) String() string {
	switch e {
	case Intel:
		return "Intel"
	case Motorola:
		return "Motorola"
	case 0x01:
		return "Adobe Ducky"
	case 'd':
		return "XMP/Adobe unknown"
	default:
		return "unknown"
	}
}

func byteOrderFor(littleEndian bool) binary.ByteOrder {
	if littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// DecodeInt interprets b as an integer of len(b) bytes.
// Supported widths are 1, 2, 4 and 8; an empty b decodes to 0.
// Unsigned 8 byte values above math.MaxInt64 wrap around.
func DecodeInt(b []byte, signed, littleEndian bool) (int64, error) {
	order := byteOrderFor(littleEndian)
	switch len(b) {
	case 0:
		return 0, nil
	case 1:
		if signed {
			return int64(int8(b[0])), nil
		}
		return int64(b[0]), nil
	case 2:
		v := order.Uint16(b)
		if signed {
			return int64(int16(v)), nil
		}
		return int64(v), nil
	case 4:
		v := order.Uint32(b)
		if signed {
			return int64(int32(v)), nil
		}
		return int64(v), nil
	case 8:
		return int64(order.Uint64(b)), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedSize, len(b))
	}
}

// EncodeInt is the inverse of DecodeInt.
func EncodeInt(v int64, size int, signed, littleEndian bool) ([]byte, error) {
	switch size {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}

	if size < 8 {
		bits := uint(size * 8)
		var lo, hi int64
		if signed {
			lo, hi = -(1 << (bits - 1)), (1<<(bits-1))-1
		} else {
			lo, hi = 0, (1<<bits)-1
		}
		if v < lo || v > hi {
			return nil, fmt.Errorf("%w: %d does not fit in %d bytes", ErrValueOutOfRange, v, size)
		}
	} else if !signed && v < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrValueOutOfRange, v)
	}

	order := byteOrderFor(littleEndian)
	b := make([]byte, size)
	switch size {
	case 1:
		b[0] = byte(v)
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	case 8:
		order.PutUint64(b, uint64(v))
	}
	return b, nil
}

// GCD returns the greatest common divisor of a and b, with GCD(a, 0) == a.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ReduceRational divides num and den by their greatest common divisor when it is larger than 1.
func ReduceRational(num, den int64) (int64, int64) {
	d := GCD(num, den)
	if d < 0 {
		d = -d
	}
	if d > 1 {
		num, den = num/d, den/d
	}
	return num, den
}
