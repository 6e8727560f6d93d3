// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package exifwalk

import (
	"errors"
	"fmt"
	"io"
)

var (
	_ io.ReadSeeker = (*ByteSource)(nil)
	_ io.ReaderAt   = (*ByteSource)(nil)
)

// ByteSource is a window over a seekable stream.
// All positions are relative to the window start.
// Note that this is not thread safe, and that every read moves the cursor
// of the underlying stream.
type ByteSource struct {
	r    io.ReadSeeker
	size int64

	start, end int64
	pos        int64
}

// NewByteSource creates a ByteSource with a window covering all of r.
func NewByteSource(r io.ReadSeeker) (*ByteSource, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return &ByteSource{r: r, size: size, end: size}, nil
}

// SetWindow sets the window to [start, end).
// Negative values are relative to the end of the stream.
// The cursor is moved to the start of the new window.
func (s *ByteSource) SetWindow(start, end int64) error {
	if start < 0 {
		start += s.size
	}
	if end < 0 {
		end += s.size
	}
	if start < 0 || end > s.size {
		return fmt.Errorf("%w: [%d, %d) outside stream of %d bytes", ErrInvalidWindow, start, end, s.size)
	}
	if start > end {
		return fmt.Errorf("%w: %d > %d", ErrInvalidWindow, start, end)
	}
	s.start, s.end = start, end
	s.pos = 0
	return nil
}

// Len returns the window length.
func (s *ByteSource) Len() int64 {
	return s.end - s.start
}

// Size returns the size of the underlying stream.
func (s *ByteSource) Size() int64 {
	return s.size
}

// Read reads up to len(p) bytes, never past the window end.
func (s *ByteSource) Read(p []byte) (int, error) {
	n, err := s.ReadAt(p, s.pos)
	s.pos += int64(n)
	if n > 0 && err == io.EOF {
		err = nil
	}
	return n, err
}

// Seek sets the window relative cursor.
// A position before the window start is clamped to 0.
func (s *ByteSource) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = s.Len() + offset
	default:
		return 0, errors.New("exifwalk: invalid whence")
	}
	if abs < 0 {
		abs = 0
	}
	s.pos = abs
	return abs, nil
}

// ReadAt reads len(p) bytes at the window relative offset off.
// It does not move the ByteSource cursor.
func (s *ByteSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("%w: negative offset %d", ErrIndexOutOfRange, off)
	}
	remaining := s.Len() - off
	if remaining <= 0 {
		return 0, io.EOF
	}
	short := false
	if int64(len(p)) > remaining {
		p = p[:remaining]
		short = true
	}
	if _, err := s.r.Seek(s.start+off, io.SeekStart); err != nil {
		return 0, err
	}
	n, err := io.ReadFull(s.r, p)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return n, err
	}
	if short {
		return n, io.EOF
	}
	return n, nil
}

// ByteAt returns the byte at index i.
// A negative i counts from the window end, so -1 is the last byte.
func (s *ByteSource) ByteAt(i int64) (byte, error) {
	n := s.Len()
	if i >= n || i < -n {
		return 0, fmt.Errorf("%w: %d (window length %d)", ErrIndexOutOfRange, i, n)
	}
	if i < 0 {
		i += n
	}
	var b [1]byte
	if _, err := s.ReadAt(b[:], i); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Slice returns a copy of the bytes in [lo, hi).
// Negative bounds count from the window end and both bounds are
// clamped to the window, so an empty slice is returned for inverted ranges.
func (s *ByteSource) Slice(lo, hi int64) ([]byte, error) {
	n := s.Len()
	lo, hi = clampIndex(lo, n), clampIndex(hi, n)
	if hi <= lo {
		return []byte{}, nil
	}
	b := make([]byte, hi-lo)
	m, err := s.ReadAt(b, lo)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return b[:m], nil
}

// SliceStep is Slice with a step. Only a step of 1 is supported.
func (s *ByteSource) SliceStep(lo, hi, step int64) ([]byte, error) {
	if step != 1 {
		return nil, fmt.Errorf("%w: step %d", ErrStepNotSupported, step)
	}
	return s.Slice(lo, hi)
}

func clampIndex(i, n int64) int64 {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func newStreamReader(src *ByteSource, order Endian, base int64) *streamReader {
	return &streamReader{
		src:   src,
		order: order,
		base:  base,
	}
}

// streamReader reads fixed width values relative to the start of a
// metadata block inside a ByteSource.
// Read failures panic with errStop, see Decode.
type streamReader struct {
	src   *ByteSource
	order Endian

	// base is the window offset that all reads are relative to.
	base int64

	buf     []byte
	readErr error
}

func (e *streamReader) allocateBuf(length int) {
	if length > cap(e.buf) {
		e.buf = make([]byte, length)
	}
}

// fits reports whether n bytes at off are inside the source.
func (e *streamReader) fits(off, n int64) bool {
	abs := e.base + off
	return off >= 0 && n >= 0 && abs >= 0 && abs+n <= e.src.Len()
}

// readBytesVolatile reads n bytes at off into a buffer
// which is not guaranteed to be valid after the next read.
func (e *streamReader) readBytesVolatile(off int64, n int) []byte {
	e.allocateBuf(n)
	m, err := e.src.ReadAt(e.buf[:n], e.base+off)
	if err != nil && !(err == io.EOF && m == n) {
		e.stop(fmt.Errorf("read %d bytes at offset %d: %w", n, off, errShortRead))
	}
	return e.buf[:n]
}

// readBytes is readBytesVolatile returning a copy.
func (e *streamReader) readBytes(off int64, n int) []byte {
	b := make([]byte, n)
	copy(b, e.readBytesVolatile(off, n))
	return b
}

func (e *streamReader) read2(off int64) uint16 {
	return e.order.ByteOrder().Uint16(e.readBytesVolatile(off, 2))
}

func (e *streamReader) read4(off int64) uint32 {
	return e.order.ByteOrder().Uint32(e.readBytesVolatile(off, 4))
}

func (e *streamReader) stop(err error) {
	if err != nil {
		e.readErr = err
	}
	panic(errStop)
}
