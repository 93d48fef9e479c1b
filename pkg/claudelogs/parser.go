// Package claudelogs exposes transcript parsing and Markdown conversion for
// use outside the agexport binary.
package claudelogs

import (
	"github.com/grovetools/agexport/internal/markdown"
	"github.com/grovetools/agexport/internal/session"
	"github.com/grovetools/agexport/internal/transcript"
)

// Record is a single classified transcript entry.
type Record = transcript.Record

// Options controls the rendered document.
type Options = markdown.Options

// Parser wraps the internal transcript parser
type Parser struct {
	*transcript.Parser
}

// NewParser creates a new transcript parser
func NewParser() *Parser {
	return &Parser{
		Parser: transcript.NewParser(),
	}
}

// ParseFile parses a Claude transcript file into classified records
func (p *Parser) ParseFile(path string) ([]Record, error) {
	return p.Parser.ParseFile(path)
}

// Render builds the Markdown document for already parsed records.
func Render(source string, records []Record, opts Options) string {
	return markdown.Render(source, records, opts)
}

// Convert reads a transcript and returns its Markdown rendition.
func Convert(path string, opts Options) (string, error) {
	return markdown.Convert(path, opts)
}

// ConvertToFile converts a transcript and writes the result to outputPath.
func ConvertToFile(path, outputPath string, opts Options) error {
	return markdown.ConvertToFile(path, outputPath, opts)
}

// OutputFileName returns the name export would use for a transcript.
func OutputFileName(path string, records []Record) string {
	return session.OutputFileName(path, records)
}
