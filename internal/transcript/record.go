// Package transcript provides the speech transcript record types and a lenient
// decoder for the JSON documents produced by ASR pipelines.
package transcript

import (
	"github.com/shopspring/decimal"
)

// TimeRange is a (start, end) pair of second offsets. A nil bound means the
// producer did not know it.
type TimeRange struct {
	Start *decimal.Decimal `json:"start"`
	End   *decimal.Decimal `json:"end"`
}

// Duration returns end minus start in seconds, or zero when either bound is
// unknown or the range is inverted.
func (tr TimeRange) Duration() decimal.Decimal {
	if tr.Start == nil || tr.End == nil {
		return decimal.Zero
	}
	d := tr.End.Sub(*tr.Start)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Record is one chunk of transcribed speech.
type Record struct {
	Text      string    `json:"text"`
	Speaker   string    `json:"speaker,omitempty"`
	Timestamp TimeRange `json:"timestamp"`

	// Presence of each key in the source object. A present key with an
	// empty value is still present.
	HasText      bool `json:"-"`
	HasSpeaker   bool `json:"-"`
	HasTimestamp bool `json:"-"`

	// Malformed is set when a key was present with a value of the wrong
	// shape. Malformed records never render.
	Malformed bool `json:"-"`
}

// Renderable reports whether the record can contribute a line. Records
// without both speaker and timestamp are trailer blocks some producers
// append (a full-text duplicate), and records without text have nothing to
// show.
func (r Record) Renderable() bool {
	if r.Malformed {
		return false
	}
	if !r.HasSpeaker && !r.HasTimestamp {
		return false
	}
	return r.HasText
}

// Sequence is an ordered list of records; order is display order.
type Sequence []Record

// Head returns at most the first n records. n <= 0 returns the sequence
// unchanged.
func (s Sequence) Head(n int) Sequence {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[:n]
}
