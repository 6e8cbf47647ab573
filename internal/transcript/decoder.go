package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/core/logging"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrUnsupportedDocument is returned when the top-level JSON value is neither
// an array of records nor an object wrapping one.
var ErrUnsupportedDocument = errors.New("unsupported transcript document")

// Decoder turns ASR JSON documents into a Sequence. Individual records of the
// wrong shape are kept but marked Malformed; only document-level problems are
// errors.
type Decoder struct {
	logger *logrus.Entry
}

// NewDecoder creates a new transcript decoder.
func NewDecoder() *Decoder {
	return &Decoder{
		logger: logging.NewLogger("articularity-decoder"),
	}
}

// DecodeFile reads and decodes the transcript at path.
func (d *Decoder) DecodeFile(path string) (Sequence, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return d.Decode(file)
}

// Decode reads a whole document from r.
func (d *Decoder) Decode(r io.Reader) (Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	return d.DecodeBytes(data)
}

// DecodeBytes decodes a document held in memory.
//
// Accepted shapes are a JSON array of records, or an object carrying a
// "speakers" array (diarized output) or a "chunks" array (plain ASR output).
func (d *Decoder) DecodeBytes(data []byte) (Sequence, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("failed to parse transcript: %w", io.ErrUnexpectedEOF)
	}

	var elems []json.RawMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &elems); err != nil {
			return nil, fmt.Errorf("failed to parse transcript: %w", err)
		}
	case '{':
		var doc struct {
			Speakers []json.RawMessage `json:"speakers"`
			Chunks   []json.RawMessage `json:"chunks"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse transcript: %w", err)
		}
		switch {
		case doc.Speakers != nil:
			elems = doc.Speakers
		case doc.Chunks != nil:
			elems = doc.Chunks
		default:
			return nil, fmt.Errorf("%w: object has no speakers or chunks array", ErrUnsupportedDocument)
		}
	default:
		if !json.Valid(data) {
			var v any
			return nil, fmt.Errorf("failed to parse transcript: %w", json.Unmarshal(data, &v))
		}
		return nil, fmt.Errorf("%w: top-level value must be an array", ErrUnsupportedDocument)
	}

	seq := make(Sequence, 0, len(elems))
	for i, raw := range elems {
		rec := d.decodeRecord(raw)
		if rec.Malformed {
			d.logger.WithField("index", i).Debug("Malformed transcript record")
		}
		seq = append(seq, rec)
	}
	return seq, nil
}

// decodeRecord never fails; shape problems set Malformed instead.
func (d *Decoder) decodeRecord(raw json.RawMessage) Record {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Record{Malformed: true}
	}

	var rec Record

	if v, ok := fields["text"]; ok {
		rec.HasText = true
		if err := json.Unmarshal(v, &rec.Text); err != nil || isNull(v) {
			rec.Malformed = true
		}
	}

	if v, ok := fields["speaker"]; ok {
		rec.HasSpeaker = true
		if err := json.Unmarshal(v, &rec.Speaker); err != nil || isNull(v) {
			rec.Malformed = true
		}
	}

	if v, ok := fields["timestamp"]; ok {
		rec.HasTimestamp = true
		tr, err := decodeTimeRange(v)
		if err != nil {
			rec.Malformed = true
		}
		rec.Timestamp = tr
	}

	return rec
}

func decodeTimeRange(raw json.RawMessage) (TimeRange, error) {
	var bounds []json.RawMessage
	if err := json.Unmarshal(raw, &bounds); err != nil {
		return TimeRange{}, err
	}
	if len(bounds) < 2 {
		return TimeRange{}, fmt.Errorf("timestamp has %d elements, want 2", len(bounds))
	}

	start, err := decodeOffset(bounds[0])
	if err != nil {
		return TimeRange{}, err
	}
	end, err := decodeOffset(bounds[1])
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

// decodeOffset accepts a JSON number or null. Quoted numbers are rejected.
func decodeOffset(raw json.RawMessage) (*decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return nil, nil
	}
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return nil, fmt.Errorf("offset %s is not a number", raw)
	}
	v, err := decimal.NewFromString(string(raw))
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
