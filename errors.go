// Copyright 2025 The originmeta authors
// SPDX-License-Identifier: MIT

package originmeta

import "errors"

var (
	// ErrNotTIFF is returned when the input does not start with a valid
	// TIFF header (byte order marker plus the magic number 42).
	ErrNotTIFF = errors.New("originmeta: not a TIFF file")

	// ErrCorruptDirectory is returned when an IFD is structurally broken:
	// an implausible entry count, a truncated entry sequence, or a value
	// that cannot be read in full.
	ErrCorruptDirectory = errors.New("originmeta: corrupt TIFF directory")

	// ErrInvalidPayload is returned when a StackedInfo payload is present
	// but its JSON does not parse. This is distinct from the payload being
	// absent, which is not an error.
	ErrInvalidPayload = errors.New("originmeta: invalid StackedInfo payload")
)

// IsInvalidFormat reports whether err classifies the input as malformed
// (as opposed to an underlying I/O failure).
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrNotTIFF) || errors.Is(err, ErrCorruptDirectory) || errors.Is(err, ErrInvalidPayload)
}
