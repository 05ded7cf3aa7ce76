// Copyright 2025 The originmeta authors
// SPDX-License-Identifier: MIT

package originmeta_test

import (
	"bytes"
	"encoding/binary"
)

const (
	testTagExifIFD   = 0x8769
	testTagMakerNote = 0x927c
)

type tiffEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value uint32
}

func writeTIFFHeader(buf *bytes.Buffer, bo binary.ByteOrder) {
	if bo == binary.LittleEndian {
		buf.WriteString("II")
	} else {
		buf.WriteString("MM")
	}
	binary.Write(buf, bo, uint16(42))
	binary.Write(buf, bo, uint32(8)) // first IFD directly after the header
}

// buildTIFF serializes a minimal classic TIFF: 8-byte header, root IFD at
// offset 8, optional EXIF IFD directly after it, payload bytes last.
// The EXIF pointer entry (when an EXIF IFD is present) and the MakerNote
// entry get their offsets patched to the computed layout; a MakerNote entry
// with count 0 gets count set to len(payload).
func buildTIFF(bo binary.ByteOrder, root, exif []tiffEntry, payload []byte) []byte {
	ifdSize := func(n int) uint32 { return uint32(2 + 12*n + 4) }

	exifOffset := 8 + ifdSize(len(root))
	payloadOffset := exifOffset
	if exif != nil {
		payloadOffset = exifOffset + ifdSize(len(exif))
	}

	patch := func(entries []tiffEntry) []tiffEntry {
		out := make([]tiffEntry, len(entries))
		copy(out, entries)
		for i := range out {
			switch out[i].tag {
			case testTagExifIFD:
				if exif != nil {
					out[i].value = exifOffset
				}
			case testTagMakerNote:
				if out[i].count == 0 {
					out[i].count = uint32(len(payload))
				}
				out[i].value = payloadOffset
			}
		}
		return out
	}

	var buf bytes.Buffer
	writeTIFFHeader(&buf, bo)

	writeIFD := func(entries []tiffEntry) {
		binary.Write(&buf, bo, uint16(len(entries)))
		for _, e := range entries {
			binary.Write(&buf, bo, e.tag)
			binary.Write(&buf, bo, e.typ)
			binary.Write(&buf, bo, e.count)
			binary.Write(&buf, bo, e.value)
		}
		binary.Write(&buf, bo, uint32(0)) // no next IFD
	}

	writeIFD(patch(root))
	if exif != nil {
		writeIFD(patch(exif))
	}
	buf.Write(payload)
	return buf.Bytes()
}

// originTIFF is the happy-path fixture: a root IFD with an unrelated tag
// and the EXIF pointer, and an EXIF IFD carrying payload in tag 37500.
func originTIFF(bo binary.ByteOrder, payload []byte) []byte {
	root := []tiffEntry{
		{tag: 0x0100, typ: 4, count: 1, value: 3056}, // ImageWidth, along for the ride
		{tag: testTagExifIFD, typ: 4, count: 1},
	}
	exif := []tiffEntry{
		{tag: testTagMakerNote, typ: 7},
	}
	return buildTIFF(bo, root, exif, payload)
}

// countOnlyTIFF declares a root IFD entry count with nothing behind it.
func countOnlyTIFF(bo binary.ByteOrder, rootCount uint16) []byte {
	var buf bytes.Buffer
	writeTIFFHeader(&buf, bo)
	binary.Write(&buf, bo, rootCount)
	return buf.Bytes()
}

// exifCountOnlyTIFF has a valid root IFD whose EXIF pointer leads to a bare
// declared entry count with nothing behind it.
func exifCountOnlyTIFF(bo binary.ByteOrder, exifCount uint16) []byte {
	var buf bytes.Buffer
	writeTIFFHeader(&buf, bo)
	exifOffset := uint32(8 + 2 + 12 + 4)
	binary.Write(&buf, bo, uint16(1))
	binary.Write(&buf, bo, uint16(testTagExifIFD))
	binary.Write(&buf, bo, uint16(4))
	binary.Write(&buf, bo, uint32(1))
	binary.Write(&buf, bo, exifOffset)
	binary.Write(&buf, bo, uint32(0))
	binary.Write(&buf, bo, exifCount)
	return buf.Bytes()
}
