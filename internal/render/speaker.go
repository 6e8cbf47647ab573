package render

import (
	"fmt"
)

// TagScheme produces the speaker tag a producer assigns to the i-th
// (1-indexed) distinct voice.
type TagScheme func(i int) string

// DefaultTagScheme matches pyannote-style diarization tags: SPEAKER_01,
// SPEAKER_02, ...
var DefaultTagScheme = FormatTagScheme("SPEAKER_%02d")

// FormatTagScheme creates a TagScheme from a printf format taking one integer.
func FormatTagScheme(format string) TagScheme {
	return func(i int) string {
		return fmt.Sprintf(format, i)
	}
}

// SpeakerIDMap maps speaker tags to display names. It is never mutated after
// construction, so a single map may be shared across concurrent renders.
type SpeakerIDMap struct {
	names map[string]string
}

// NewSpeakerIDMap pairs the i-th name with scheme(i). It returns nil when
// names is empty, which leaves every tag unresolved. A nil scheme selects
// DefaultTagScheme.
func NewSpeakerIDMap(names []string, scheme TagScheme) *SpeakerIDMap {
	if len(names) == 0 {
		return nil
	}
	if scheme == nil {
		scheme = DefaultTagScheme
	}
	m := &SpeakerIDMap{names: make(map[string]string, len(names))}
	for i, name := range names {
		m.names[scheme(i+1)] = name
	}
	return m
}

// With returns a copy of m with the explicit tag -> name overrides applied.
// It is safe to call on a nil map. Empty overrides return m itself.
func (m *SpeakerIDMap) With(overrides map[string]string) *SpeakerIDMap {
	if len(overrides) == 0 {
		return m
	}
	out := &SpeakerIDMap{names: make(map[string]string, m.Len()+len(overrides))}
	if m != nil {
		for tag, name := range m.names {
			out.names[tag] = name
		}
	}
	for tag, name := range overrides {
		out.names[tag] = name
	}
	return out
}

// Resolve returns the display name for tag, or tag itself when unmapped.
func (m *SpeakerIDMap) Resolve(tag string) string {
	if m == nil {
		return tag
	}
	if name, ok := m.names[tag]; ok {
		return name
	}
	return tag
}

// Lookup reports the mapped name for tag, if any.
func (m *SpeakerIDMap) Lookup(tag string) (string, bool) {
	if m == nil {
		return "", false
	}
	name, ok := m.names[tag]
	return name, ok
}

// Len returns the number of mapped tags.
func (m *SpeakerIDMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}
