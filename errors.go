// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrUnsupportedFormat is returned when the input is neither a TIFF nor a JPEG file.
	ErrUnsupportedFormat = errors.New("exifwalk: unsupported file format")

	// ErrNoExifData is returned when a JPEG file carries no Exif block.
	ErrNoExifData = errors.New("exifwalk: no EXIF data found")

	// ErrUnsupportedSize is returned by DecodeInt and EncodeInt for widths other than 1, 2, 4 or 8 bytes.
	ErrUnsupportedSize = errors.New("exifwalk: unsupported integer size")

	// ErrValueOutOfRange is returned by EncodeInt when the value does not fit the requested width.
	ErrValueOutOfRange = errors.New("exifwalk: value out of range")

	// ErrIndexOutOfRange is returned by ByteSource.ByteAt.
	ErrIndexOutOfRange = errors.New("exifwalk: index out of range")

	// ErrInvalidWindow is returned by ByteSource.SetWindow when start > end.
	ErrInvalidWindow = errors.New("exifwalk: window start cannot be after end")

	// ErrStepNotSupported is returned by ByteSource.SliceStep for any step other than 1.
	ErrStepNotSupported = errors.New("exifwalk: slicing with a step is not supported")

	errShortRead = errors.New("short read")

	// Internal error to signal that we should stop any further processing.
	errStop = errors.New("stop")
)

// InvalidFormatError is used when the metadata structure is malformed,
// e.g. a directory pointing outside the file or an unknown field type in strict mode.
type InvalidFormatError struct {
	Err error
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("exifwalk: invalid format: %v", e.Err)
}

// Is reports whether the target error is an InvalidFormatError.
func (e *InvalidFormatError) Is(target error) bool {
	_, ok := target.(*InvalidFormatError)
	return ok
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// IsInvalidFormat reports whether the error was an InvalidFormatError.
// These point to a corrupt file or a decoder bug and are worth reporting.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, &InvalidFormatError{})
}

// IsMissingData reports whether the error only means that the input lacks
// what we look for: an unsupported container or a container without Exif data.
func IsMissingData(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrNoExifData)
}

func newInvalidFormatError(err error) error {
	return &InvalidFormatError{Err: err}
}

func newInvalidFormatErrorf(format string, args ...any) error {
	return &InvalidFormatError{Err: fmt.Errorf(format, args...)}
}

func isInvalidFormatErrorCandidate(err error) bool {
	if err == nil {
		return false
	}
	if IsInvalidFormat(err) {
		return false
	}
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, errShortRead) ||
		errors.Is(err, ErrIndexOutOfRange)
}
