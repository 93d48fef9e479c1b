package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectBinary locates the agexport binary under test. AGEXPORT_BINARY
// wins; otherwise bin/agexport is searched for upward from the cwd.
func FindProjectBinary() (string, error) {
	if bin := os.Getenv("AGEXPORT_BINARY"); bin != "" {
		return filepath.Abs(bin)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "bin", "agexport")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("agexport binary not found; build it to bin/agexport or set AGEXPORT_BINARY")
		}
		dir = parent
	}
}
