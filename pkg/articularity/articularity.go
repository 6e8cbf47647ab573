// Package articularity exposes the transcript renderer for embedding. A
// caller supplies a Source of records and a Sink for the rendered text.
package articularity

import (
	"context"
	"fmt"

	"github.com/fblissjr/articularity/internal/output"
	"github.com/fblissjr/articularity/internal/render"
	"github.com/fblissjr/articularity/internal/transcript"
)

type (
	// Record is one chunk of transcribed speech.
	Record = transcript.Record
	// Sequence is an ordered list of records.
	Sequence = transcript.Sequence
	// TimeRange is a record's (start, end) offsets in seconds.
	TimeRange = transcript.TimeRange
	// Options controls timestamp and speaker inclusion.
	Options = render.Options
	// SpeakerIDMap resolves speaker tags to display names.
	SpeakerIDMap = render.SpeakerIDMap
)

// Source provides the records to render.
type Source interface {
	Records(ctx context.Context) (Sequence, error)
}

// Sink accepts the rendered text.
type Sink interface {
	Write(ctx context.Context, text string) error
}

// DefaultOptions includes timestamps and speakers with no name mapping.
func DefaultOptions() Options {
	return render.DefaultOptions()
}

// NewSpeakerIDMap maps names to SPEAKER_01, SPEAKER_02, ... in order.
func NewSpeakerIDMap(names ...string) *SpeakerIDMap {
	return render.NewSpeakerIDMap(names, render.DefaultTagScheme)
}

// Render renders seq as text.
func Render(seq Sequence, opts Options) string {
	return render.Render(seq, opts)
}

// Convert reads records from src, renders them and writes the text to sink.
func Convert(ctx context.Context, src Source, sink Sink, opts Options) error {
	seq, err := src.Records(ctx)
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := sink.Write(ctx, render.Render(seq, opts)); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// FileSource reads a JSON transcript document from disk.
type FileSource struct {
	Path string
	// Limit keeps only the first Limit records. 0 keeps all.
	Limit int

	decoder *transcript.Decoder
}

// NewFileSource creates a source for the document at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path, decoder: transcript.NewDecoder()}
}

// Records decodes the file.
func (s *FileSource) Records(ctx context.Context) (Sequence, error) {
	if s.decoder == nil {
		s.decoder = transcript.NewDecoder()
	}
	seq, err := s.decoder.DecodeFile(s.Path)
	if err != nil {
		return nil, err
	}
	return seq.Head(s.Limit), nil
}

// FileSink writes the text to a file, replacing it. A Path of "-" writes to
// stdout. Result is populated after a successful Write.
type FileSink struct {
	Path   string
	Result output.Result
}

// NewFileSink creates a sink for path.
func NewFileSink(path string) *FileSink {
	return &FileSink{Path: path}
}

// Write persists text.
func (s *FileSink) Write(ctx context.Context, text string) error {
	res, err := output.WriteFile(s.Path, text)
	if err != nil {
		return err
	}
	s.Result = res
	return nil
}
