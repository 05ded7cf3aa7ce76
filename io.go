// Copyright 2025 The originmeta authors
// SPDX-License-Identifier: MIT

package originmeta

import (
	"encoding/binary"
	"io"
)

// streamReader wraps a ReadSeeker with byte-order aware binary reads.
// The byte order is set once, from the TIFF header, and never changes for
// the lifetime of one decode. Not safe for concurrent use.
type streamReader struct {
	r         io.ReadSeeker
	byteOrder binary.ByteOrder

	buf []byte
}

func newStreamReader(r io.ReadSeeker) *streamReader {
	return &streamReader{
		r:   r,
		buf: make([]byte, 8),
	}
}

// Every fixed-size read is fallible. A short read surfaces as
// io.ErrUnexpectedEOF and is never coerced to a zero value; callers map it
// to the error class appropriate for the structure being read.

func (e *streamReader) read2() (uint16, error) {
	if err := e.readNIntoBuf(2); err != nil {
		return 0, err
	}
	return e.byteOrder.Uint16(e.buf[:2]), nil
}

func (e *streamReader) read4() (uint32, error) {
	if err := e.readNIntoBuf(4); err != nil {
		return 0, err
	}
	return e.byteOrder.Uint32(e.buf[:4]), nil
}

func (e *streamReader) readBytes(b []byte) error {
	if _, err := io.ReadFull(e.r, b); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

func (e *streamReader) readNIntoBuf(n int) error {
	return e.readBytes(e.buf[:n])
}

func (e *streamReader) pos() (int64, error) {
	return e.r.Seek(0, io.SeekCurrent)
}

func (e *streamReader) seek(pos int64) error {
	_, err := e.r.Seek(pos, io.SeekStart)
	return err
}

// preservePos runs f and restores the read cursor to where it was before,
// so an out-of-line value read does not desynchronize the directory walk.
func (e *streamReader) preservePos(f func() error) error {
	pos, err := e.pos()
	if err != nil {
		return err
	}
	if err := f(); err != nil {
		return err
	}
	return e.seek(pos)
}
