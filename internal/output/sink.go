// Package output persists rendered transcripts.
package output

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"lukechampine.com/blake3"
)

// Stdout is the output path that selects standard output.
const Stdout = "-"

// Result describes what was written.
type Result struct {
	Path   string `json:"path"`
	Bytes  int    `json:"bytes"`
	Digest string `json:"digest"`
}

// Digest returns the hex blake3-256 digest of text. Identical renders have
// identical digests.
func Digest(text string) string {
	h := blake3.New(32, nil)
	io.WriteString(h, text)
	return hex.EncodeToString(h.Sum(nil))
}

// WriteFile writes text to path verbatim, replacing any existing file. A path
// of "-" writes to stdout.
func WriteFile(path, text string) (Result, error) {
	res := Result{Path: path, Bytes: len(text), Digest: Digest(text)}

	if path == Stdout {
		if _, err := io.WriteString(os.Stdout, text); err != nil {
			return res, fmt.Errorf("failed to write to stdout: %w", err)
		}
		return res, nil
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return res, fmt.Errorf("failed to write output file: %w", err)
	}
	return res, nil
}
