package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fblissjr/articularity/internal/render"
	"github.com/grovetools/core/tui/theme"
)

// Formatting constants for preview output
const (
	treeChar = "⎿" // Continuation marker for multi-line record text
)

// Previewer styles rendered lines for the terminal. Each distinct speaker
// name gets the next colour of the palette on first appearance, so a name
// keeps its colour for the whole transcript.
type Previewer struct {
	muted    lipgloss.Style
	palette  []lipgloss.Style
	assigned map[string]lipgloss.Style
}

// NewPreviewer creates a previewer using the grove theme colours.
func NewPreviewer() *Previewer {
	return &Previewer{
		muted: lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText),
		palette: []lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultColors.Violet),
			lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultColors.Yellow),
			lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultColors.Green),
			lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultColors.Red),
			lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultColors.LightText),
		},
		assigned: make(map[string]lipgloss.Style),
	}
}

// Line renders seg with styling. The plain-text layout is the same as
// render.Segments.String; continuation lines of multi-line text are
// indented under a tree marker.
func (p *Previewer) Line(seg render.Segments) string {
	var parts []string
	if seg.TimeRange != "" {
		parts = append(parts, p.muted.Render(seg.TimeRange))
	}
	if seg.HasSpeaker {
		parts = append(parts, p.speakerStyle(seg.Speaker).Render(seg.Speaker+":"))
	}

	text := strings.TrimSpace(seg.Text)
	lines := strings.Split(text, "\n")
	parts = append(parts, lines[0])
	out := strings.Join(parts, " ")

	if len(lines) > 1 {
		tree := p.muted.Render(treeChar)
		var b strings.Builder
		b.WriteString(out)
		for _, l := range lines[1:] {
			b.WriteString("\n  " + tree + "  " + strings.TrimSpace(l))
		}
		out = b.String()
	}
	return out
}

func (p *Previewer) speakerStyle(name string) lipgloss.Style {
	if st, ok := p.assigned[name]; ok {
		return st
	}
	st := p.palette[len(p.assigned)%len(p.palette)]
	p.assigned[name] = st
	return st
}
