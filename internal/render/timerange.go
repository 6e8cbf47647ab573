package render

import (
	"fmt"

	"github.com/fblissjr/articularity/internal/transcript"
	"github.com/shopspring/decimal"
)

const unknownOffset = "00:00:00"

var (
	secondsPerHour   = decimal.NewFromInt(3600)
	secondsPerMinute = decimal.NewFromInt(60)
)

// FormatOffset converts a seconds offset to HH:MM:SS. Fractions are
// truncated, hours are not capped at 24, and nil or negative offsets render
// as 00:00:00.
func FormatOffset(d *decimal.Decimal) string {
	if d == nil || d.IsNegative() {
		return unknownOffset
	}
	// Stay in decimal arithmetic: hours are unbounded and may not fit an int64.
	hours, rem := d.Truncate(0).QuoRem(secondsPerHour, 0)
	minutes, seconds := rem.QuoRem(secondsPerMinute, 0)

	h := hours.BigInt().String()
	if len(h) < 2 {
		h = "0" + h
	}
	return fmt.Sprintf("%s:%02d:%02d", h, minutes.IntPart(), seconds.IntPart())
}

// FormatTimeRange renders a range as "[HH:MM:SS - HH:MM:SS]". An unknown
// bound does not suppress the range.
func FormatTimeRange(tr transcript.TimeRange) string {
	return "[" + FormatOffset(tr.Start) + " - " + FormatOffset(tr.End) + "]"
}
