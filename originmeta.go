// Copyright 2025 The originmeta authors
// SPDX-License-Identifier: MIT

// Package originmeta extracts the astronomical metadata that Celestron
// Origin telescopes embed in their stacked TIFF exports.
//
// The metadata is a JSON document smuggled into an UNDEFINED-type MakerNote
// tag (37500) inside the EXIF sub-IFD. The decoder walks header → root IFD →
// EXIF IFD → tag value with defensive bounds on every untrusted count and
// offset; it never reads the whole file into memory.
package originmeta

import (
	"fmt"
	"io"
	"os"
)

// Document is the decoded StackedInfo JSON payload: nested string-keyed
// maps with string, number and bool leaves. The decoder treats the schema
// as opaque; see StackedInfo for typed access to the well-known fields.
type Document map[string]any

// Default sanity ceilings on IFD entry counts. A main IFD in a real TIFF
// holds a few dozen entries at most; anything near these limits is a corrupt
// or hostile file.
const (
	defaultLimitRootIFDEntries = 1000
	defaultLimitExifIFDEntries = 100

	// defaultLimitPayloadSize caps the out-of-line value read. 10 MB is
	// plenty for image metadata.
	defaultLimitPayloadSize = 10 * 1024 * 1024
)

// Options contains the options for the Decode function.
type Options struct {
	// The Reader (typically a *os.File) to read the TIFF from.
	R io.ReadSeeker

	// Warnf will be called with diagnostics about why a file yielded no
	// metadata. If not set, diagnostics are dropped.
	Warnf func(string, ...any)

	// LimitRootIFDEntries is the maximum entry count accepted for the root
	// IFD. Default value is 1000.
	LimitRootIFDEntries uint16

	// LimitExifIFDEntries is the maximum entry count accepted for the EXIF
	// sub-IFD. Default value is 100.
	LimitExifIFDEntries uint16

	// LimitPayloadSize is the maximum size in bytes of the tag value to
	// read. Default value is 10 MB.
	LimitPayloadSize uint32
}

// Decode reads opts.R as a TIFF and returns the embedded StackedInfo
// document, or nil when the file carries none.
//
// Absence is not an error: a missing EXIF pointer, a missing or wrongly
// typed MakerNote tag, and a payload that fails the content sniff all
// return (nil, nil), since most TIFF files legitimately lack this
// vendor-specific metadata. Structural problems return ErrNotTIFF,
// ErrCorruptDirectory or ErrInvalidPayload; underlying read failures are
// returned as-is.
func Decode(opts Options) (Document, error) {
	if opts.R == nil {
		return nil, fmt.Errorf("originmeta: no reader provided")
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.LimitRootIFDEntries == 0 {
		opts.LimitRootIFDEntries = defaultLimitRootIFDEntries
	}
	if opts.LimitExifIFDEntries == 0 {
		opts.LimitExifIFDEntries = defaultLimitExifIFDEntries
	}
	if opts.LimitPayloadSize == 0 {
		opts.LimitPayloadSize = defaultLimitPayloadSize
	}

	e := newStreamReader(opts.R)

	firstIFDOffset, err := e.readHeader()
	if err != nil {
		return nil, err
	}

	rootDir, err := e.walkIFD(firstIFDOffset, opts.LimitRootIFDEntries)
	if err != nil {
		return nil, err
	}

	exifPointer, found := locateTag(rootDir, tagExifIFD)
	if !found {
		opts.Warnf("originmeta: no EXIF sub-IFD pointer in root IFD")
		return nil, nil
	}

	exifDir, err := e.walkIFD(exifPointer.valueOffset, opts.LimitExifIFDEntries)
	if err != nil {
		return nil, err
	}

	payloadEntry, found := locateTag(exifDir, tagMakerNote)
	if !found {
		opts.Warnf("originmeta: no MakerNote tag in EXIF IFD")
		return nil, nil
	}
	if payloadEntry.typ != typeUndefined {
		opts.Warnf("originmeta: MakerNote tag has field type %d, want %d", payloadEntry.typ, typeUndefined)
		return nil, nil
	}
	if payloadEntry.count > opts.LimitPayloadSize {
		return nil, fmt.Errorf("%w: tag value size %d exceeds limit %d", ErrCorruptDirectory, payloadEntry.count, opts.LimitPayloadSize)
	}

	raw, err := e.readPayload(payloadEntry.valueOffset, payloadEntry.count)
	if err != nil {
		return nil, err
	}

	text := decodePayloadText(raw)
	if !looksLikeStackedInfo(text) {
		opts.Warnf("originmeta: MakerNote value does not look like StackedInfo JSON")
		return nil, nil
	}

	return parsePayload(text)
}

// ExtractFile opens filename and decodes it with default options. The file
// handle is closed on every return path.
func ExtractFile(filename string) (Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(Options{R: f})
}
