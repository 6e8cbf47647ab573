package transcript

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SpeakerStats aggregates the renderable records of one speaker tag.
type SpeakerStats struct {
	Tag      string          `json:"tag"`
	Records  int             `json:"records"`
	Words    int             `json:"words"`
	Duration decimal.Decimal `json:"durationSeconds"`
}

// Summary holds the per-speaker breakdown of a sequence.
type Summary struct {
	Total     int            `json:"total"`
	Rendered  int            `json:"rendered"`
	Malformed int            `json:"malformed"`
	Speakers  []SpeakerStats `json:"speakers"`
}

// Summarize walks the sequence once. Speakers appear in order of first
// occurrence; renderable records without a speaker are grouped under the
// empty tag.
func Summarize(seq Sequence) Summary {
	sum := Summary{Total: len(seq)}
	index := make(map[string]int)

	for _, rec := range seq {
		if rec.Malformed {
			sum.Malformed++
			continue
		}
		if !rec.Renderable() {
			continue
		}
		sum.Rendered++

		i, ok := index[rec.Speaker]
		if !ok {
			i = len(sum.Speakers)
			index[rec.Speaker] = i
			sum.Speakers = append(sum.Speakers, SpeakerStats{Tag: rec.Speaker})
		}
		st := &sum.Speakers[i]
		st.Records++
		st.Words += countWords(rec.Text)
		if rec.HasTimestamp {
			st.Duration = st.Duration.Add(rec.Timestamp.Duration())
		}
	}
	return sum
}

func countWords(s string) int {
	return len(strings.Fields(s))
}
