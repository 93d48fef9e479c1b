package transcript

import (
	"bytes"
	"fmt"
	"os"

	"github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"
)

// Parser reads whole JSONL transcripts into records.
type Parser struct {
	logger *logrus.Entry
}

// NewParser creates a new transcript parser
func NewParser() *Parser {
	return &Parser{
		logger: logging.NewLogger("agexport.transcript"),
	}
}

// ParseFile reads the entire file at path and decodes every line.
// Only a failure to read the file is returned as an error; undecodable
// lines are skipped.
func (p *Parser) ParseFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript %s: %w", path, err)
	}
	return p.Parse(data), nil
}

// Parse decodes newline-delimited records from data, in order.
func (p *Parser) Parse(data []byte) []Record {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	lines := bytes.Split(data, []byte("\n"))
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		rec, err := DecodeLine(line)
		if err != nil {
			// Log but don't fail on individual line errors
			p.logger.WithError(err).WithField("line", i+1).Debug("Skipping undecodable transcript line")
			continue
		}
		records = append(records, rec)
	}
	return records
}
