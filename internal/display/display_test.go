package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/grovetools/agexport/internal/export"
	"github.com/grovetools/agexport/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestPrintTranscriptsTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTranscriptsTable([]session.TranscriptInfo{{
		SessionID:   "session-alpha",
		LogFilePath: "/p/session-alpha.jsonl",
		StartedAt:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Size:        2048,
		Turns:       3,
		OutputName:  "2025-01-01_1200_Hello.md",
	}}, &buf)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SESSION ID")
	assert.Contains(t, lines[1], "session-alpha.jsonl")
	assert.Contains(t, lines[1], "2025-01-01 12:00")
	assert.Contains(t, lines[1], "2.0 kB")
	assert.Contains(t, lines[1], "2025-01-01_1200_Hello.md")
}

func TestFormatExportedFile(t *testing.T) {
	ok := FormatExportedFile(export.FileResult{Source: "/c/a.jsonl", Output: "/o/x.md", Turns: 1})
	assert.Contains(t, ok, "a.jsonl")
	assert.Contains(t, ok, "x.md")
	assert.Contains(t, ok, "1 turn")

	failed := FormatExportedFile(export.FileResult{Source: "/c/b.jsonl", Err: errors.New("permission denied")})
	assert.Contains(t, failed, "b.jsonl")
	assert.Contains(t, failed, "permission denied")
}

func TestFormatExportSummary(t *testing.T) {
	r := &export.Result{OutputDir: "/proj/llm_convos", Files: []export.FileResult{{}, {}, {Err: errors.New("x")}}}
	got := FormatExportSummary(r)
	assert.Contains(t, got, "Done. 2 file(s) written to /proj/llm_convos")
	assert.Contains(t, got, "1 failed")
}
