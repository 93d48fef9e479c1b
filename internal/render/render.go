// Package render turns classified transcript records into Markdown fragments.
// It performs no I/O.
package render

import (
	"fmt"
	"strings"

	"github.com/grovetools/agexport/internal/formatters"
	"github.com/grovetools/agexport/internal/transcript"
)

// DefaultPreviewLength is how many characters of a tool result are shown.
const DefaultPreviewLength = 200

// Options controls rendering.
type Options struct {
	// DetailLevel is passed to tool formatters ("summary" or "full").
	DetailLevel string
	// PreviewLength bounds tool-result previews. Zero means the default.
	PreviewLength int
}

// Renderer extracts the human-visible text of records.
type Renderer struct {
	tools         *formatters.Registry
	detailLevel   string
	previewLength int
}

// NewRenderer creates a renderer with the built-in tool formatters.
func NewRenderer(opts Options) *Renderer {
	detail := opts.DetailLevel
	if detail == "" {
		detail = formatters.DetailSummary
	}
	preview := opts.PreviewLength
	if preview <= 0 {
		preview = DefaultPreviewLength
	}
	return &Renderer{
		tools:         formatters.NewRegistry(),
		detailLevel:   detail,
		previewLength: preview,
	}
}

// Tools exposes the formatter registry so callers can add tools.
func (r *Renderer) Tools() *formatters.Registry {
	return r.tools
}

// Render dispatches on the record kind. Records of other kinds render empty.
func (r *Renderer) Render(rec transcript.Record) string {
	switch rec.Kind {
	case transcript.KindHuman:
		return r.Human(rec.Payload)
	case transcript.KindAgent:
		return r.Assistant(rec.Payload)
	default:
		return ""
	}
}

// Human renders the content of a "user" record, genuine or automated.
// Fragments are joined with single newlines.
func (r *Renderer) Human(payload transcript.Payload) string {
	switch p := payload.(type) {
	case transcript.PlainText:
		return string(p)
	case transcript.Blocks:
		var parts []string
		for _, block := range p {
			switch b := block.(type) {
			case transcript.TextBlock:
				parts = append(parts, TextFragments(b.Text)...)
			case transcript.ToolResultBlock:
				parts = append(parts, r.toolResultLines(b)...)
			}
		}
		return strings.Join(parts, "\n")
	default:
		return ""
	}
}

// Assistant renders the content of an "assistant" record. Fragments are
// separated by a blank line; reasoning is never shown.
func (r *Renderer) Assistant(payload transcript.Payload) string {
	switch p := payload.(type) {
	case transcript.PlainText:
		return strings.TrimSpace(string(p))
	case transcript.Blocks:
		var parts []string
		for _, block := range p {
			switch b := block.(type) {
			case transcript.TextBlock:
				if text := strings.TrimSpace(b.Text); text != "" {
					parts = append(parts, text)
				}
			case transcript.ToolUseBlock:
				parts = append(parts, r.tools.Format(b.Name, b.Input, r.detailLevel))
			}
		}
		return strings.Join(parts, "\n\n")
	default:
		return ""
	}
}

func (r *Renderer) toolResultLines(b transcript.ToolResultBlock) []string {
	switch c := b.Content.(type) {
	case transcript.PlainText:
		return []string{r.toolResultLine(string(c))}
	case transcript.Blocks:
		var lines []string
		for _, sub := range c {
			if text, ok := sub.(transcript.TextBlock); ok {
				lines = append(lines, r.toolResultLine(text.Text))
			}
		}
		return lines
	default:
		return nil
	}
}

func (r *Renderer) toolResultLine(content string) string {
	return fmt.Sprintf("> **Tool result:** %s", formatters.Preview(content, r.previewLength))
}
