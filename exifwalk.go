// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package exifwalk reads EXIF and TIFF metadata from JPEG and TIFF files.
package exifwalk

import (
	"fmt"
	"io"
	"time"
)

const (
	// ImageFormatAuto signals that the image format should be detected from the file signature.
	ImageFormatAuto ImageFormat = iota
	// JPEG is the JPEG image format.
	JPEG
	// TIFF is the TIFF image format.
	TIFF
)

// ImageFormat is the image format.
//
//go:generate stringer -type=ImageFormat
type ImageFormat int

// Options contains the options for the Decode function.
type Options struct {
	// The Reader (typically a *os.File) to read image metadata from.
	R io.ReadSeeker

	// The image format in R.
	// If set to something other than ImageFormatAuto, a file of another format fails with ErrUnsupportedFormat.
	ImageFormat ImageFormat

	// Quick skips the UserComment and MakerNote tags and all maker note decoding.
	Quick bool

	// Strict turns unknown field types and data outside the file into errors.
	// By default these tags are skipped with a warning.
	Strict bool

	// FakeEXIF adds 18 to relative maker note pointers.
	FakeEXIF bool

	// Warnf will be called for each warning.
	Warnf func(string, ...any)

	// Debugf will be called to trace the segment scan and the directory walk.
	Debugf func(string, ...any)

	// LimitNumTags is the maximum number of directory entries to read.
	// Default value is 5000.
	LimitNumTags uint32

	// Timeout is the maximum time the decoder will spend on reading metadata.
	// Mostly useful for testing.
	// If set to 0, the decoder will not time out.
	Timeout time.Duration
}

// Location is where the TIFF structured metadata block starts in a file.
type Location struct {
	Format ImageFormat

	// Offset is the position of the TIFF header.
	Offset int64

	// Endian is the first byte of the TIFF header.
	Endian Endian
}

// DecodeResult contains the result of a Decode operation.
type DecodeResult struct {
	ImageFormat ImageFormat
	Location    Location

	// Tags holds all decoded tags keyed by "<directory> <tag name>".
	Tags Tags

	// Thumbnails holds the embedded thumbnails keyed by ThumbnailJPEG or ThumbnailTIFF.
	Thumbnails map[string][]byte

	// Warnings is a *multierror.Error with all warnings, nil if there were none.
	Warnings error
}

type baseStreamingDecoder struct {
	src  *ByteSource
	opts Options
}

type locator interface {
	locate() (Location, error)
}

// ProcessFile is a shorthand for Decode with opts.R set to r.
func ProcessFile(r io.ReadSeeker, opts Options) (DecodeResult, error) {
	opts.R = r
	return Decode(opts)
}

// Locate finds the metadata block in src.
func Locate(src *ByteSource) (Location, error) {
	base := &baseStreamingDecoder{
		src:  src,
		opts: Options{Debugf: func(string, ...any) {}},
	}
	format, err := detectFormat(src)
	if err != nil {
		return Location{}, err
	}
	return newLocator(base, format).locate()
}

func detectFormat(src *ByteSource) (ImageFormat, error) {
	header, err := src.Slice(0, 12)
	if err != nil {
		return ImageFormatAuto, err
	}
	switch {
	case isTIFF(header):
		return TIFF, nil
	case isJPEG(header):
		return JPEG, nil
	default:
		return ImageFormatAuto, ErrUnsupportedFormat
	}
}

func newLocator(base *baseStreamingDecoder, format ImageFormat) locator {
	if format == TIFF {
		return &imageDecoderTIF{baseStreamingDecoder: base}
	}
	return &imageDecoderJPEG{baseStreamingDecoder: base}
}

// Decode reads the EXIF metadata from opts.R.
// The decode is all or nothing: on error no tags are returned.
// Note that opts.R must not be used by others while Decode runs.
func Decode(opts Options) (result DecodeResult, err error) {
	var dec *metaDecoderEXIF

	errFinal := func(err2 error) error {
		if err2 == nil {
			return nil
		}
		if isInvalidFormatErrorCandidate(err2) {
			err2 = newInvalidFormatError(err2)
		}
		return err2
	}

	defer func() {
		err = errFinal(err)
		if err != nil {
			result = DecodeResult{}
		}
	}()

	errFromRecover := func(r any) (err2 error) {
		if r == nil {
			return nil
		}
		if r == errStop && dec != nil && dec.readErr != nil {
			return dec.readErr
		}
		if errp, ok := r.(error); ok {
			return errp
		}
		return fmt.Errorf("unknown panic: %v", r)
	}

	defer func() {
		err2 := errFromRecover(recover())
		if err == nil {
			err = err2
		}
	}()

	if opts.R == nil {
		return result, fmt.Errorf("no reader provided")
	}
	const defaultLimitNumTags = 5000
	if opts.LimitNumTags == 0 {
		opts.LimitNumTags = defaultLimitNumTags
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.Debugf == nil {
		opts.Debugf = func(string, ...any) {}
	}

	src, err := NewByteSource(opts.R)
	if err != nil {
		return result, err
	}

	format, err := detectFormat(src)
	if err != nil {
		return result, err
	}
	if opts.ImageFormat != ImageFormatAuto && opts.ImageFormat != format {
		return result, fmt.Errorf("%w: expected %s, got %s", ErrUnsupportedFormat, opts.ImageFormat, format)
	}

	base := &baseStreamingDecoder{
		src:  src,
		opts: opts,
	}

	loc, err := newLocator(base, format).locate()
	if err != nil {
		return result, err
	}
	opts.Debugf("endian format is %c (%s)", byte(loc.Endian), loc.Endian)

	dec = newMetaDecoderEXIF(base, loc)

	decode := func() chan error {
		errc := make(chan error, 1)
		go func() {
			defer func() {
				err2 := errFromRecover(recover())
				if err2 != nil {
					errc <- err2
				}
			}()
			errc <- dec.decode()
		}()
		return errc
	}

	if opts.Timeout > 0 {
		select {
		case <-time.After(opts.Timeout):
			err = fmt.Errorf("timed out after %s", opts.Timeout)
		case err = <-decode():
		}
	} else {
		err = dec.decode()
	}

	if err != nil {
		return
	}

	result.ImageFormat = format
	result.Location = loc
	result.Tags, result.Thumbnails, result.Warnings = dec.result()

	return
}
