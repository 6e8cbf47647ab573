// Package render turns a transcript sequence into plain text, one line per
// record:
//
//	[00:00:00 - 00:00:05] Alice: Hello
//
// Rendering is a pure function of its inputs.
package render

import (
	"strings"

	"github.com/fblissjr/articularity/internal/transcript"
)

// Options controls which segments appear on each line.
type Options struct {
	IncludeTimestamps bool
	IncludeSpeakers   bool
	// Speakers resolves tags to display names. Nil leaves tags raw.
	Speakers *SpeakerIDMap
}

// DefaultOptions includes timestamps and speakers with no name mapping.
func DefaultOptions() Options {
	return Options{IncludeTimestamps: true, IncludeSpeakers: true}
}

// Render renders seq and joins the lines with "\n". There is no trailing
// newline; no renderable records yields "".
func Render(seq transcript.Sequence, opts Options) string {
	return strings.Join(Lines(seq, opts), "\n")
}

// Lines renders each renderable record of seq, in order.
func Lines(seq transcript.Sequence, opts Options) []string {
	lines := make([]string, 0, len(seq))
	for _, rec := range seq {
		if line, ok := Line(rec, opts); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// Segments holds the pieces of one rendered line. An empty TimeRange is
// omitted; the speaker is shown whenever HasSpeaker is set, even if the
// resolved name is empty.
type Segments struct {
	TimeRange  string
	Speaker    string
	HasSpeaker bool
	Text       string
}

// String joins the non-empty segments with single spaces.
func (s Segments) String() string {
	parts := make([]string, 0, 3)
	if s.TimeRange != "" {
		parts = append(parts, s.TimeRange)
	}
	if s.HasSpeaker {
		parts = append(parts, s.Speaker+":")
	}
	parts = append(parts, s.Text)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Split builds the segments for rec. ok is false when the record is excluded.
func Split(rec transcript.Record, opts Options) (seg Segments, ok bool) {
	if !rec.Renderable() {
		return Segments{}, false
	}
	if opts.IncludeTimestamps && rec.HasTimestamp {
		seg.TimeRange = FormatTimeRange(rec.Timestamp)
	}
	if opts.IncludeSpeakers && rec.HasSpeaker {
		seg.Speaker = opts.Speakers.Resolve(rec.Speaker)
		seg.HasSpeaker = true
	}
	seg.Text = rec.Text
	return seg, true
}

// Line renders a single record. ok is false when the record is excluded.
func Line(rec transcript.Record, opts Options) (line string, ok bool) {
	seg, ok := Split(rec, opts)
	if !ok {
		return "", false
	}
	return seg.String(), true
}
