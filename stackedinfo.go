// Copyright 2025 The originmeta authors
// SPDX-License-Identifier: MIT

package originmeta

import (
	"math"
	"time"
)

// StackedInfo is a typed view over the "StackedInfo" object of a decoded
// document. The Origin firmware makes no guarantee about which keys are
// present, so every accessor reports whether its field was found.
type StackedInfo struct {
	m map[string]any
}

// CaptureParams holds the per-frame camera settings of a stack.
type CaptureParams struct {
	Exposure     float64 // seconds
	ISO          int
	Temperature  float64 // °C
	Binning      int
	AutoExposure bool
}

// GPS is the capture location.
type GPS struct {
	Latitude  float64 // degrees
	Longitude float64 // degrees
	Altitude  float64 // meters
}

// StackedInfo returns the typed view over the document's StackedInfo
// object, if present.
func (d Document) StackedInfo() (StackedInfo, bool) {
	m, ok := d["StackedInfo"].(map[string]any)
	return StackedInfo{m: m}, ok
}

func (si StackedInfo) str(key string) (string, bool) {
	s, ok := si.m[key].(string)
	return s, ok
}

// encoding/json decodes every JSON number into a float64.
func (si StackedInfo) num(key string) (float64, bool) {
	f, ok := si.m[key].(float64)
	return f, ok
}

func (si StackedInfo) integer(key string) (int, bool) {
	f, ok := si.num(key)
	return int(f), ok
}

// ObjectName returns the target name, e.g. "M 51".
func (si StackedInfo) ObjectName() (string, bool) { return si.str("objectName") }

// DateTime returns the capture timestamp as recorded by the firmware,
// e.g. "2025-05-19T22:22:12+0100".
func (si StackedInfo) DateTime() (string, bool) { return si.str("dateTime") }

// Filter returns the filter name, e.g. "Clear".
func (si StackedInfo) Filter() (string, bool) { return si.str("filter") }

// Bayer returns the sensor's Bayer pattern, e.g. "grbg".
func (si StackedInfo) Bayer() (string, bool) { return si.str("bayer") }

// UUID returns the stack's unique id.
func (si StackedInfo) UUID() (string, bool) { return si.str("uuid") }

// StackedDepth returns the number of frames in the stack.
func (si StackedInfo) StackedDepth() (int, bool) { return si.integer("stackedDepth") }

// TotalDuration returns the total integration time of the stack.
func (si StackedInfo) TotalDuration() (time.Duration, bool) {
	ms, ok := si.num("totalDurationMs")
	return time.Duration(ms * float64(time.Millisecond)), ok
}

// GPS returns the capture location, if recorded.
func (si StackedInfo) GPS() (GPS, bool) {
	m, ok := si.m["gps"].(map[string]any)
	if !ok {
		return GPS{}, false
	}
	inner := StackedInfo{m: m}
	var g GPS
	g.Latitude, _ = inner.num("latitude")
	g.Longitude, _ = inner.num("longitude")
	g.Altitude, _ = inner.num("altitude")
	return g, true
}

// CaptureParams returns the per-frame camera settings, if recorded.
func (si StackedInfo) CaptureParams() (CaptureParams, bool) {
	m, ok := si.m["captureParams"].(map[string]any)
	if !ok {
		return CaptureParams{}, false
	}
	inner := StackedInfo{m: m}
	var cp CaptureParams
	cp.Exposure, _ = inner.num("exposure")
	cp.ISO, _ = inner.integer("iso")
	cp.Temperature, _ = inner.num("temperature")
	cp.Binning, _ = inner.integer("binning")
	cp.AutoExposure, _ = m["autoExposure"].(bool)
	return cp, true
}

// FieldOfView returns the field of view in radians, as stored.
func (si StackedInfo) FieldOfView() (fovX, fovY float64, ok bool) {
	fovX, okX := si.num("fovX")
	fovY, okY := si.num("fovY")
	return fovX, fovY, okX && okY
}

// FieldOfViewDegrees returns the field of view converted to degrees.
func (si StackedInfo) FieldOfViewDegrees() (fovX, fovY float64, ok bool) {
	fovX, fovY, ok = si.FieldOfView()
	return fovX * 180 / math.Pi, fovY * 180 / math.Pi, ok
}

// Stretch returns the firmware's stretch parameters, if recorded.
func (si StackedInfo) Stretch() (background, strength float64, ok bool) {
	background, okB := si.num("stretchBackground")
	strength, okS := si.num("stretchStrength")
	return background, strength, okB || okS
}
