package articularity_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fblissjr/articularity/pkg/articularity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	seq articularity.Sequence
	err error
}

func (s staticSource) Records(ctx context.Context) (articularity.Sequence, error) {
	return s.seq, s.err
}

type memorySink struct {
	text   string
	writes int
}

func (s *memorySink) Write(ctx context.Context, text string) error {
	s.text = text
	s.writes++
	return nil
}

func TestConvert(t *testing.T) {
	t.Parallel()
	src := staticSource{seq: articularity.Sequence{
		{Text: "Hello", Speaker: "SPEAKER_01", HasText: true, HasSpeaker: true},
		{Text: "dup", HasText: true},
		{Text: "Bye", Speaker: "SPEAKER_02", HasText: true, HasSpeaker: true},
	}}
	sink := &memorySink{}

	opts := articularity.DefaultOptions()
	opts.Speakers = articularity.NewSpeakerIDMap("Alice")
	require.NoError(t, articularity.Convert(context.Background(), src, sink, opts))

	assert.Equal(t, "Alice: Hello\nSPEAKER_02: Bye", sink.text)
	assert.Equal(t, 1, sink.writes)
}

func TestConvert_SourceError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	sink := &memorySink{}
	err := articularity.Convert(context.Background(), staticSource{err: boom}, sink, articularity.DefaultOptions())
	require.ErrorIs(t, err, boom)
	assert.Zero(t, sink.writes)
}

func TestConvert_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink := &memorySink{}
	err := articularity.Convert(ctx, staticSource{}, sink, articularity.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sink.writes)
}

func TestConvert_Files(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte(`[
		{"timestamp":[0,5],"speaker":"SPEAKER_01","text":"Hello"},
		{"timestamp":[5,7],"speaker":"SPEAKER_02","text":"Hi"},
		{"timestamp":[7,9],"speaker":"SPEAKER_01","text":"Bye"},
		{"timestamp":[9,11],"speaker":"SPEAKER_02","text":"Later"}
	]`), 0644))

	src := articularity.NewFileSource(in)
	src.Limit = 3
	sink := articularity.NewFileSink(out)
	opts := articularity.Options{IncludeTimestamps: true}
	require.NoError(t, articularity.Convert(context.Background(), src, sink, opts))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want := "[00:00:00 - 00:00:05] Hello\n[00:00:05 - 00:00:07] Hi\n[00:00:07 - 00:00:09] Bye"
	assert.Equal(t, want, string(data))
	assert.Equal(t, len(want), sink.Result.Bytes)
	assert.NotEmpty(t, sink.Result.Digest)
}

func TestFileSource_InvalidJSON(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"text":`), 0644))

	_, err := articularity.NewFileSource(path).Records(context.Background())
	require.Error(t, err)
}
