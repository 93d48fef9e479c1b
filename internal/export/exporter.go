// Package export converts every transcript of a project into Markdown files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/agexport/internal/markdown"
	"github.com/grovetools/agexport/internal/session"
	"github.com/grovetools/agexport/internal/transcript"
	"github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"
)

// FileResult describes the conversion of one transcript.
type FileResult struct {
	Source string
	Output string
	Turns  int
	Err    error
}

// Result summarises an export run.
type Result struct {
	ConvoDir  string
	OutputDir string
	Files     []FileResult
}

// Failed counts the transcripts that could not be converted.
func (r *Result) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Err != nil {
			n++
		}
	}
	return n
}

// Exporter writes one document per transcript into a project's output
// directory.
type Exporter struct {
	projectsDir string
	outputDir   string
	opts        markdown.Options
	parser      *transcript.Parser
	logger      *logrus.Entry
}

// New creates an exporter. outputDir is resolved against the project root
// unless it is absolute.
func New(projectsDir, outputDir string, opts markdown.Options) *Exporter {
	return &Exporter{
		projectsDir: projectsDir,
		outputDir:   outputDir,
		opts:        opts,
		parser:      transcript.NewParser(),
		logger:      logging.NewLogger("agexport.export"),
	}
}

// Plan is what an export run will do: the transcripts found and the
// directory documents go to.
type Plan struct {
	ConvoDir    string
	Transcripts []string
	OutputDir   string
}

// Discover locates the transcripts for projectRoot, or in convoDirOverride
// when set, without writing anything.
func (e *Exporter) Discover(projectRoot, convoDirOverride string) (*Plan, error) {
	convoDir, err := session.ResolveConvoDir(e.projectsDir, projectRoot, convoDirOverride)
	if err != nil {
		return nil, err
	}
	paths, err := session.ListTranscripts(convoDir)
	if err != nil {
		return nil, err
	}

	outDir := e.outputDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(projectRoot, outDir)
	}
	return &Plan{ConvoDir: convoDir, Transcripts: paths, OutputDir: outDir}, nil
}

// Export converts every transcript in the plan. onFile, when non-nil, is
// called after each transcript. A transcript that cannot be read is
// reported in its FileResult and does not stop the run.
func (e *Exporter) Export(plan *Plan, onFile func(FileResult)) (*Result, error) {
	if err := os.MkdirAll(plan.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &Result{ConvoDir: plan.ConvoDir, OutputDir: plan.OutputDir}
	used := make(map[string]bool)
	for _, path := range plan.Transcripts {
		fr := e.exportOne(path, plan.OutputDir, used)
		if fr.Err != nil {
			e.logger.WithError(fr.Err).WithField("file", path).Debug("Failed to export transcript")
		}
		result.Files = append(result.Files, fr)
		if onFile != nil {
			onFile(fr)
		}
	}
	return result, nil
}

// Run discovers and exports in one step.
func (e *Exporter) Run(projectRoot, convoDirOverride string, onFile func(FileResult)) (*Result, error) {
	plan, err := e.Discover(projectRoot, convoDirOverride)
	if err != nil {
		return nil, err
	}
	return e.Export(plan, onFile)
}

func (e *Exporter) exportOne(path, outDir string, used map[string]bool) FileResult {
	fr := FileResult{Source: path}

	records, err := e.parser.ParseFile(path)
	if err != nil {
		fr.Err = fmt.Errorf("%w: %w", markdown.ErrReadTranscript, err)
		return fr
	}

	name := session.OutputFileName(path, records)
	if used[name] {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if r := []rune(stem); len(r) > 8 {
			stem = string(r[:8])
		}
		name = strings.TrimSuffix(name, ".md") + "_" + stem + ".md"
	}
	used[name] = true
	fr.Output = filepath.Join(outDir, name)

	a := markdown.NewAssembler(path, e.opts)
	for _, rec := range records {
		a.Add(rec)
	}
	fr.Turns = a.Turns()

	if err := os.WriteFile(fr.Output, []byte(a.String()), 0644); err != nil {
		fr.Err = fmt.Errorf("failed to write %s: %w", fr.Output, err)
	}
	return fr
}
