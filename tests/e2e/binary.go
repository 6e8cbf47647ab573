package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// FindProjectBinary locates the articularity binary under test. The
// ARTICULARITY_BINARY environment variable wins, then ./bin, then PATH.
func FindProjectBinary() (string, error) {
	if p := os.Getenv("ARTICULARITY_BINARY"); p != "" {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, "bin", "articularity")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}
	if p, err := exec.LookPath("articularity"); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("articularity binary not found; build it into ./bin or set ARTICULARITY_BINARY")
}
