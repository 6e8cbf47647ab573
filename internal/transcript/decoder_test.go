package transcript_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fblissjr/articularity/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBytes_Array(t *testing.T) {
	t.Parallel()
	seq, err := transcript.NewDecoder().DecodeBytes([]byte(`[
		{"timestamp":[0,5.25],"speaker":"SPEAKER_01","text":"Hello"},
		{"timestamp":[3661,null],"text":"x"},
		{"text":"trailer"},
		{}
	]`))
	require.NoError(t, err)
	require.Len(t, seq, 4)

	first := seq[0]
	assert.True(t, first.HasText)
	assert.True(t, first.HasSpeaker)
	assert.True(t, first.HasTimestamp)
	assert.False(t, first.Malformed)
	assert.Equal(t, "SPEAKER_01", first.Speaker)
	require.NotNil(t, first.Timestamp.Start)
	require.NotNil(t, first.Timestamp.End)
	assert.Equal(t, "5.25", first.Timestamp.End.String())
	assert.True(t, first.Renderable())

	second := seq[1]
	assert.False(t, second.HasSpeaker)
	assert.Equal(t, int64(3661), second.Timestamp.Start.IntPart())
	assert.Nil(t, second.Timestamp.End)
	assert.True(t, second.Renderable())

	assert.False(t, seq[2].Renderable(), "text without speaker or timestamp is a trailer block")
	assert.False(t, seq[3].Renderable())
	assert.False(t, seq[3].Malformed)
}

func TestDecodeBytes_WrapperObjects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		doc      string
		wantText string
	}{
		{
			name:     "speakers preferred",
			doc:      `{"speakers":[{"speaker":"SPEAKER_00","timestamp":[0,1],"text":"diarized"}],"chunks":[{"timestamp":[0,1],"text":"plain"}],"text":"diarized"}`,
			wantText: "diarized",
		},
		{
			name:     "chunks fallback",
			doc:      `{"chunks":[{"timestamp":[0,1],"text":"plain"}],"text":"plain"}`,
			wantText: "plain",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := transcript.NewDecoder().DecodeBytes([]byte(tt.doc))
			require.NoError(t, err)
			require.Len(t, seq, 1)
			assert.Equal(t, tt.wantText, seq[0].Text)
		})
	}
}

func TestDecodeBytes_MalformedRecords(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		elem string
	}{
		{"number", `1`},
		{"string", `"text"`},
		{"null", `null`},
		{"array", `[0,5]`},
		{"text not string", `{"timestamp":[0,1],"text":3}`},
		{"text null", `{"timestamp":[0,1],"text":null}`},
		{"speaker not string", `{"speaker":["a"],"text":"t"}`},
		{"speaker null", `{"speaker":null,"text":"t"}`},
		{"timestamp null", `{"timestamp":null,"text":"t"}`},
		{"timestamp object", `{"timestamp":{"start":0},"text":"t"}`},
		{"timestamp short", `{"timestamp":[1],"text":"t"}`},
		{"timestamp quoted", `{"timestamp":["1","2"],"text":"t"}`},
		{"timestamp bool", `{"timestamp":[true,2],"text":"t"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := transcript.NewDecoder().DecodeBytes([]byte("[" + tt.elem + "]"))
			require.NoError(t, err, "bad records must not fail the document")
			require.Len(t, seq, 1)
			assert.True(t, seq[0].Malformed)
			assert.False(t, seq[0].Renderable())
		})
	}
}

func TestDecodeBytes_ExtraTimestampElementsIgnored(t *testing.T) {
	t.Parallel()
	seq, err := transcript.NewDecoder().DecodeBytes([]byte(`[{"timestamp":[1,2,"x"],"text":"t"}]`))
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.False(t, seq[0].Malformed)
	assert.Equal(t, int64(2), seq[0].Timestamp.End.IntPart())
}

func TestDecodeBytes_DocumentErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		doc         string
		unsupported bool
	}{
		{"empty", "", false},
		{"whitespace", "  \n", false},
		{"truncated array", `[{"text":"a"}`, false},
		{"garbage", `not json`, false},
		{"bare number", `42`, true},
		{"bare string", `"x"`, true},
		{"object without records", `{"text":"hello"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transcript.NewDecoder().DecodeBytes([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, tt.unsupported, errors.Is(err, transcript.ErrUnsupportedDocument))
		})
	}
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"speaker":"SPEAKER_01","text":"hi"}]`), 0644))

	seq, err := transcript.NewDecoder().DecodeFile(path)
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Equal(t, "hi", seq[0].Text)

	_, err = transcript.NewDecoder().DecodeFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestSequenceHead(t *testing.T) {
	t.Parallel()
	seq := transcript.Sequence{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}
	assert.Len(t, seq.Head(3), 3)
	assert.Equal(t, "c", seq.Head(3)[2].Text)
	assert.Len(t, seq.Head(0), 4)
	assert.Len(t, seq.Head(-1), 4)
	assert.Len(t, seq.Head(10), 4)
}
