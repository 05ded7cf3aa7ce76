// Copyright 2025 The originmeta authors
// SPDX-License-Identifier: MIT

package originmeta

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale-aware printer so large counts (integration seconds, frame counts)
// render with digit grouping.
var reportPrinter = message.NewPrinter(language.English)

// WriteReport renders a human-readable summary of the document to w.
// Every field is optional; sections with no data are omitted entirely.
// The name is only used for the heading.
func WriteReport(w io.Writer, name string, doc Document) {
	p := reportPrinter

	si, ok := doc.StackedInfo()
	if !ok {
		p.Fprintf(w, "No StackedInfo object in metadata from %s\n", name)
		return
	}

	p.Fprintf(w, "Astronomical Image: %s\n", name)
	p.Fprintln(w, strings.Repeat("=", 50))

	if v, ok := si.ObjectName(); ok {
		p.Fprintf(w, "Target: %s\n", v)
	}
	if v, ok := si.DateTime(); ok {
		p.Fprintf(w, "Date/Time: %s\n", v)
	}
	if gps, ok := si.GPS(); ok {
		p.Fprintf(w, "Location: %.4f°, %.4f° (altitude: %.0fm)\n", gps.Latitude, gps.Longitude, gps.Altitude)
	}

	if cp, ok := si.CaptureParams(); ok {
		p.Fprintf(w, "\nCapture Settings:\n")
		p.Fprintf(w, "  Exposure: %gs\n", cp.Exposure)
		p.Fprintf(w, "  ISO: %d\n", cp.ISO)
		p.Fprintf(w, "  Temperature: %.1f°C\n", cp.Temperature)
		p.Fprintf(w, "  Binning: %dx%d\n", cp.Binning, cp.Binning)
		p.Fprintf(w, "  Auto Exposure: %s\n", yesNo(cp.AutoExposure))
	}

	depth, okDepth := si.StackedDepth()
	total, okTotal := si.TotalDuration()
	if okDepth || okTotal {
		p.Fprintf(w, "\nStacking:\n")
		if okDepth {
			p.Fprintf(w, "  Frames stacked: %d\n", depth)
		}
		if okTotal {
			p.Fprintf(w, "  Total integration time: %.1f minutes (%d seconds)\n", total.Minutes(), int64(total.Seconds()))
		}
	}

	filter, okFilter := si.Filter()
	bayer, okBayer := si.Bayer()
	fovX, fovY, okFOV := si.FieldOfViewDegrees()
	if okFilter || okBayer || okFOV {
		p.Fprintf(w, "\nTechnical Details:\n")
		if okFilter {
			p.Fprintf(w, "  Filter: %s\n", filter)
		}
		if okBayer {
			p.Fprintf(w, "  Bayer pattern: %s\n", strings.ToUpper(bayer))
		}
		if okFOV {
			p.Fprintf(w, "  Field of view: %.3f° x %.3f°\n", fovX, fovY)
		}
	}

	if background, strength, ok := si.Stretch(); ok {
		p.Fprintf(w, "\nProcessing:\n")
		p.Fprintf(w, "  Stretch background: %g\n", background)
		p.Fprintf(w, "  Stretch strength: %g\n", strength)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
