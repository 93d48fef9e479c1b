package markdown

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/agexport/internal/transcript"
)

// ErrReadTranscript marks a conversion that failed because its input could
// not be read at all.
var ErrReadTranscript = errors.New("cannot read transcript")

// Convert reads the transcript at path and returns its Markdown rendering.
func Convert(path string, opts Options) (string, error) {
	records, err := transcript.NewParser().ParseFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadTranscript, err)
	}
	return Render(path, records, opts), nil
}

// ConvertToFile converts the transcript at path and writes the document to
// outputPath, creating parent directories as needed.
func ConvertToFile(path, outputPath string, opts Options) error {
	doc, err := Convert(path, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}
