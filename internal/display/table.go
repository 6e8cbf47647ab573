package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fblissjr/articularity/internal/render"
	"github.com/fblissjr/articularity/internal/transcript"
)

// PrintSpeakersTable prints the per-speaker summary in a formatted table.
func PrintSpeakersTable(sum transcript.Summary, speakers *render.SpeakerIDMap, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TAG\tNAME\tLINES\tWORDS\tSPEAKING TIME")
	for _, s := range sum.Speakers {
		tag := s.Tag
		if tag == "" {
			tag = "-"
		}
		name, ok := speakers.Lookup(s.Tag)
		if !ok {
			name = "-"
		}
		duration := s.Duration
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			tag, name, s.Records, s.Words, render.FormatOffset(&duration))
	}
	w.Flush()
	fmt.Fprintf(writer, "\n%d of %d records rendered", sum.Rendered, sum.Total)
	if sum.Malformed > 0 {
		fmt.Fprintf(writer, " (%d malformed)", sum.Malformed)
	}
	fmt.Fprintln(writer)
}
