// Package markdown assembles rendered transcript records into a single
// Markdown document.
package markdown

import (
	"fmt"
	"strings"

	"github.com/grovetools/agexport/internal/render"
	"github.com/grovetools/agexport/internal/transcript"
)

// DefaultTitle heads every document unless Options.Title is set.
const DefaultTitle = "Claude Code Conversation"

// Options controls document assembly and rendering.
type Options struct {
	Title         string
	DetailLevel   string
	PreviewLength int
}

func (o Options) renderOptions() render.Options {
	return render.Options{DetailLevel: o.DetailLevel, PreviewLength: o.PreviewLength}
}

// Assembler folds records into a document. It owns the turn counter, which
// only genuine human turns advance. An Assembler serves one conversion.
type Assembler struct {
	renderer *render.Renderer
	turn     int
	lines    []string
}

// NewAssembler starts a document for the given source identifier.
func NewAssembler(source string, opts Options) *Assembler {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	return &Assembler{
		renderer: render.NewRenderer(opts.renderOptions()),
		lines: []string{
			fmt.Sprintf("# %s\n", title),
			fmt.Sprintf("*Source: `%s`*\n", source),
			"---\n",
		},
	}
}

// Renderer returns the renderer used for records.
func (a *Assembler) Renderer() *render.Renderer {
	return a.renderer
}

// Add renders one record and appends it. Records of other kinds and records
// that render to whitespace leave the document and counter untouched.
func (a *Assembler) Add(rec transcript.Record) {
	switch rec.Kind {
	case transcript.KindHuman:
		text := a.renderer.Human(rec.Payload)
		if strings.TrimSpace(text) == "" {
			return
		}
		if rec.Origin == transcript.OriginGenuine {
			a.turn++
			a.lines = append(a.lines, fmt.Sprintf("\n## Human (%d)\n", a.turn))
		}
		a.lines = append(a.lines, text, "")
	case transcript.KindAgent:
		text := a.renderer.Assistant(rec.Payload)
		if strings.TrimSpace(text) == "" {
			return
		}
		a.lines = append(a.lines, "\n## Assistant\n", text, "")
	}
}

// Turns reports how many genuine human turns have been emitted.
func (a *Assembler) Turns() int {
	return a.turn
}

// String returns the document assembled so far.
func (a *Assembler) String() string {
	return strings.Join(a.lines, "\n")
}

// Render assembles records in order into a complete document.
func Render(source string, records []transcript.Record, opts Options) string {
	a := NewAssembler(source, opts)
	for _, rec := range records {
		a.Add(rec)
	}
	return a.String()
}
