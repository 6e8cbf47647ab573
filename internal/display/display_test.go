package display_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fblissjr/articularity/internal/display"
	"github.com/fblissjr/articularity/internal/render"
	"github.com/fblissjr/articularity/internal/transcript"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrintSpeakersTable(t *testing.T) {
	t.Parallel()
	sum := transcript.Summary{
		Total:     5,
		Rendered:  3,
		Malformed: 1,
		Speakers: []transcript.SpeakerStats{
			{Tag: "SPEAKER_01", Records: 2, Words: 7, Duration: decimal.RequireFromString("75.9")},
			{Tag: "SPEAKER_02", Records: 1, Words: 1, Duration: decimal.Zero},
			{Tag: "", Records: 1, Words: 3},
		},
	}
	speakers := render.NewSpeakerIDMap([]string{"Alice"}, nil)

	var buf bytes.Buffer
	display.PrintSpeakersTable(sum, speakers, &buf)
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Contains(t, lines[0], "TAG")
	assert.Contains(t, lines[0], "SPEAKING TIME")
	assert.Equal(t, []string{"SPEAKER_01", "Alice", "2", "7", "00:01:15"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"SPEAKER_02", "-", "1", "1", "00:00:00"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"-", "-", "1", "3", "00:00:00"}, strings.Fields(lines[3]))
	assert.Contains(t, out, "3 of 5 records rendered (1 malformed)")
}

func TestPreviewer_Line(t *testing.T) {
	t.Parallel()
	p := display.NewPreviewer()

	line := p.Line(render.Segments{
		TimeRange:  "[00:00:00 - 00:00:05]",
		Speaker:    "Alice",
		HasSpeaker: true,
		Text:       "Hello",
	})
	assert.Contains(t, line, "[00:00:00 - 00:00:05]")
	assert.Contains(t, line, "Alice:")
	assert.True(t, strings.HasSuffix(line, "Hello"))

	multi := p.Line(render.Segments{Text: "first\nsecond"})
	parts := strings.Split(multi, "\n")
	assert.Len(t, parts, 2)
	assert.Equal(t, "first", parts[0])
	assert.Contains(t, parts[1], "second")
}
