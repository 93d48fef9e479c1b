package session

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/agexport/internal/transcript"
)

const (
	timestampLayout = "2006-01-02_1504"
	maxLabelWords   = 6
	maxLabelLength  = 50
)

var (
	tagRe     = regexp.MustCompile(`<[^>]+>`)
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s\p{Z}-]`)
)

// ConvoTimestamp formats the first usable record timestamp as
// "2006-01-02_1504".
func ConvoTimestamp(records []transcript.Record) (string, bool) {
	for _, rec := range records {
		if t, ok := rec.Time(); ok {
			return t.Format(timestampLayout), true
		}
	}
	return "", false
}

// FirstMessageLabel derives a filename-safe label from the first message
// typed by a person: tags and punctuation removed, the first six words
// joined with underscores, at most 50 characters.
func FirstMessageLabel(records []transcript.Record) (string, bool) {
	for _, rec := range records {
		if rec.Type != "user" || rec.UserType != "external" {
			continue
		}

		var text string
		switch p := rec.Payload.(type) {
		case transcript.PlainText:
			text = string(p)
		case transcript.Blocks:
			var texts []string
			for _, b := range p {
				if tb, ok := b.(transcript.TextBlock); ok {
					texts = append(texts, tb.Text)
				}
			}
			text = strings.Join(texts, " ")
		default:
			continue
		}

		label := labelFromText(text)
		return label, label != ""
	}
	return "", false
}

func labelFromText(text string) string {
	text = tagRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(nonWordRe.ReplaceAllString(text, ""))
	words := strings.Fields(text)
	if len(words) > maxLabelWords {
		words = words[:maxLabelWords]
	}
	return truncateRunes(strings.Join(words, "_"), maxLabelLength)
}

// OutputFileName builds "<timestamp>_<label>.md" for a transcript, falling
// back to "unknown" and the first eight characters of the file stem.
func OutputFileName(path string, records []transcript.Record) string {
	timestamp, ok := ConvoTimestamp(records)
	if !ok {
		timestamp = "unknown"
	}
	label, ok := FirstMessageLabel(records)
	if !ok {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		label = truncateRunes(stem, 8)
	}
	return timestamp + "_" + label + ".md"
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
