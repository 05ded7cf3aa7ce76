// Copyright 2025 The originmeta authors
// SPDX-License-Identifier: MIT

package originmeta

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// readPayload reads count bytes at offset, restoring the cursor afterwards
// so the read behaves as a non-destructive probe into the file.
func (e *streamReader) readPayload(offset, count uint32) ([]byte, error) {
	b := make([]byte, count)
	err := e.preservePos(func() error {
		if err := e.seek(int64(offset)); err != nil {
			return err
		}
		if err := e.readBytes(b); err != nil {
			if err == io.ErrUnexpectedEOF {
				return fmt.Errorf("%w: truncated tag value at offset %d", ErrCorruptDirectory, offset)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// decodePayloadText recovers text from a raw UNDEFINED-type value. The scan
// stops at the first NUL byte; bytes outside printable ASCII are dropped
// without terminating the scan, tolerating stray binary inside an otherwise
// textual blob.
func decodePayloadText(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c == 0 {
			break
		}
		if c >= 0x20 && c <= 0x7e {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// looksLikeStackedInfo is a cheap content sniff: other vendors use the same
// MakerNote tag number for arbitrary binary, so require the StackedInfo key
// and at least one brace before attempting a JSON parse. Deliberately not a
// schema check.
func looksLikeStackedInfo(text string) bool {
	return strings.Contains(text, "StackedInfo") && strings.Contains(text, "{")
}

// parsePayload parses sniffed payload text as JSON. A parse failure here is
// a hard error, reported distinctly from the payload being absent, so
// callers can tell a corrupted-but-present payload from no payload at all.
func parsePayload(text string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return doc, nil
}
