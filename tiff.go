// Copyright 2025 The originmeta authors
// SPDX-License-Identifier: MIT

package originmeta

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	byteOrderLittleEndian = 0x4949 // "II"
	byteOrderBigEndian    = 0x4d4d // "MM"
	tiffMagic             = 42

	// tagExifIFD points from the root IFD to the EXIF sub-IFD.
	tagExifIFD = 0x8769 // 34665
	// tagMakerNote is the private UNDEFINED-type tag the Origin telescope
	// stores its StackedInfo JSON in.
	tagMakerNote = 0x927c // 37500

	typeUndefined = 7
)

// directoryEntry is the fixed 12-byte on-disk IFD entry.
//
//   - 2 bytes tag id
//   - 2 bytes field type
//   - 4 bytes value count
//   - 4 bytes value, or offset to the value when it does not fit.
//
// For the two tags this package cares about (the EXIF pointer and the
// MakerNote payload) the last field is always a file offset.
type directoryEntry struct {
	tag         uint16
	typ         uint16
	count       uint32
	valueOffset uint32
}

// readHeader validates the 8-byte TIFF header and returns the offset of the
// first IFD. It sets the stream's byte order for all subsequent reads.
func (e *streamReader) readHeader() (uint32, error) {
	var order [2]byte
	if err := e.readBytes(order[:]); err != nil {
		// A file too short for the order marker is not a TIFF.
		if err == io.ErrUnexpectedEOF {
			return 0, fmt.Errorf("%w: short header", ErrNotTIFF)
		}
		return 0, err
	}

	switch {
	case order[0] == 'I' && order[1] == 'I':
		e.byteOrder = binary.LittleEndian
	case order[0] == 'M' && order[1] == 'M':
		e.byteOrder = binary.BigEndian
	default:
		return 0, fmt.Errorf("%w: unknown byte order marker %q", ErrNotTIFF, order[:])
	}

	magic, err := e.read2()
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			return 0, fmt.Errorf("%w: short header", ErrNotTIFF)
		}
		return 0, err
	}
	if magic != tiffMagic {
		return 0, fmt.Errorf("%w: magic number %d", ErrNotTIFF, magic)
	}

	firstIFDOffset, err := e.read4()
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			return 0, fmt.Errorf("%w: short header", ErrNotTIFF)
		}
		return 0, err
	}

	return firstIFDOffset, nil
}

// walkIFD reads the directory at offset. An offset of zero means the
// directory is absent, which is not an error: the result is nil.
//
// maxEntries is the sanity ceiling on the entry count; anything above it is
// treated as a corrupt or hostile file rather than read. The walker does not
// interpret tag semantics, and it leaves the read cursor at the end of the
// last entry read.
func (e *streamReader) walkIFD(offset uint32, maxEntries uint16) ([]directoryEntry, error) {
	if offset == 0 {
		return nil, nil
	}
	if err := e.seek(int64(offset)); err != nil {
		return nil, err
	}

	count, err := e.read2()
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: truncated entry count at offset %d", ErrCorruptDirectory, offset)
		}
		return nil, err
	}
	if count > maxEntries {
		return nil, fmt.Errorf("%w: %d entries at offset %d exceeds limit %d", ErrCorruptDirectory, count, offset, maxEntries)
	}

	raw := make([]byte, 12*int(count))
	if err := e.readBytes(raw); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: truncated entries at offset %d", ErrCorruptDirectory, offset)
		}
		return nil, err
	}

	entries := make([]directoryEntry, count)
	for i := range entries {
		b := raw[12*i:]
		entries[i] = directoryEntry{
			tag:         e.byteOrder.Uint16(b[0:2]),
			typ:         e.byteOrder.Uint16(b[2:4]),
			count:       e.byteOrder.Uint32(b[4:8]),
			valueOffset: e.byteOrder.Uint32(b[8:12]),
		}
	}

	return entries, nil
}

// locateTag returns the first entry with the given tag id. TIFF does not
// guarantee tag ordering, so this is a plain linear scan with no early exit
// beyond the first match.
func locateTag(dir []directoryEntry, tag uint16) (directoryEntry, bool) {
	for _, entry := range dir {
		if entry.tag == tag {
			return entry, true
		}
	}
	return directoryEntry{}, false
}
