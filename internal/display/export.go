package display

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/grovetools/agexport/internal/export"
	"github.com/grovetools/core/tui/theme"
)

// FormatExportedFile renders one export result as a styled status line:
// "<icon> source.jsonl -> output.md (n turns)" or the error in red.
func FormatExportedFile(fr export.FileResult) string {
	mutedStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
	source := filepath.Base(fr.Source)

	if fr.Err != nil {
		redStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Red)
		return fmt.Sprintf("  %s %s", redStyle.Render(source), mutedStyle.Render(fr.Err.Error()))
	}

	greenStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Green)
	turns := "turns"
	if fr.Turns == 1 {
		turns = "turn"
	}
	return fmt.Sprintf("  %s %s -> %s %s",
		greenStyle.Render(theme.IconFile), source, filepath.Base(fr.Output),
		mutedStyle.Render(fmt.Sprintf("(%s %s)", humanize.Comma(int64(fr.Turns)), turns)))
}

// FormatExportSummary renders the closing line of an export run.
func FormatExportSummary(r *export.Result) string {
	written := len(r.Files) - r.Failed()
	summary := fmt.Sprintf("Done. %s file(s) written to %s", humanize.Comma(int64(written)), r.OutputDir)
	if failed := r.Failed(); failed > 0 {
		redStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Red)
		summary += redStyle.Render(fmt.Sprintf(" (%d failed)", failed))
	}
	return summary
}
