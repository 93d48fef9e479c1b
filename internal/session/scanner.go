package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/agexport/internal/render"
	"github.com/grovetools/agexport/internal/transcript"
)

// Scanner is responsible for finding and summarising transcript logs.
type Scanner struct {
	parser   *transcript.Parser
	renderer *render.Renderer
}

// NewScanner creates a new session scanner.
func NewScanner() *Scanner {
	return &Scanner{
		parser:   transcript.NewParser(),
		renderer: render.NewRenderer(render.Options{}),
	}
}

// Scan summarises every transcript in dir, sorted by file name.
// Files that cannot be read are skipped.
func (s *Scanner) Scan(dir string) ([]TranscriptInfo, error) {
	paths, err := ListTranscripts(dir)
	if err != nil {
		return nil, err
	}

	var infos []TranscriptInfo
	for _, path := range paths {
		info, err := s.Inspect(path)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Inspect reads one transcript and describes it.
func (s *Scanner) Inspect(path string) (TranscriptInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return TranscriptInfo{}, err
	}
	records, err := s.parser.ParseFile(path)
	if err != nil {
		return TranscriptInfo{}, err
	}

	info := TranscriptInfo{
		SessionID:   strings.TrimSuffix(filepath.Base(path), ".jsonl"),
		LogFilePath: path,
		Size:        stat.Size(),
		OutputName:  OutputFileName(path, records),
	}
	info.Label, _ = FirstMessageLabel(records)

	foundSession, foundStart := false, false
	for _, rec := range records {
		if !foundSession && rec.SessionID != "" {
			info.SessionID = rec.SessionID
			foundSession = true
		}
		if !foundStart {
			if t, ok := rec.Time(); ok {
				info.StartedAt = t
				foundStart = true
			}
		}
		// same rule the document uses for numbering turns
		if rec.IsGenuine() && strings.TrimSpace(s.renderer.Human(rec.Payload)) != "" {
			info.Turns++
		}
	}
	if !foundStart {
		info.StartedAt = stat.ModTime()
	}
	return info, nil
}
