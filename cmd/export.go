package cmd

import (
	"fmt"

	"github.com/grovetools/agexport/internal/display"
	"github.com/grovetools/agexport/internal/export"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"
)

var ulogExport = grovelogging.NewUnifiedLogger("agexport.cmd.export")

func newExportCmd() *cobra.Command {
	var convoDir string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export [project-root]",
		Short: "Export all conversations of a project to Markdown",
		Long: `Find every Claude Code conversation recorded for a project and write one
Markdown file per conversation into <project-root>/llm_convos/.

The project root defaults to the current directory. Use --convo-dir to point
at a conversation folder directly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			projectRoot, err := projectRootArg(args)
			if err != nil {
				return fmt.Errorf("failed to resolve project root: %w", err)
			}
			projects, err := projectsDir(cfg)
			if err != nil {
				return fmt.Errorf("failed to locate Claude projects directory: %w", err)
			}
			if outputDir == "" {
				outputDir = cfg.Export.OutputDir
			}

			exporter := export.New(projects, outputDir, markdownOptions(cfg))
			plan, err := exporter.Discover(projectRoot, convoDir)
			if err != nil {
				return err
			}

			ulogExport.Info("Conversations found").
				Field("count", len(plan.Transcripts)).
				Field("convo_dir", plan.ConvoDir).
				Pretty(fmt.Sprintf("Found %d conversation(s) in:\n  %s\n", len(plan.Transcripts), plan.ConvoDir)).
				PrettyOnly().
				Emit()

			result, err := exporter.Export(plan, func(fr export.FileResult) {
				ulogExport.Info("Transcript exported").
					Field("source", fr.Source).
					Field("output", fr.Output).
					Field("turns", fr.Turns).
					Pretty(display.FormatExportedFile(fr) + "\n").
					PrettyOnly().
					Emit()
			})
			if err != nil {
				return err
			}

			ulogExport.Info("Export complete").
				Field("written", len(result.Files)-result.Failed()).
				Field("failed", result.Failed()).
				Field("output_dir", result.OutputDir).
				Pretty("\n" + display.FormatExportSummary(result) + "\n").
				PrettyOnly().
				Emit()

			if failed := result.Failed(); failed > 0 {
				return fmt.Errorf("%d of %d transcripts could not be exported", failed, len(result.Files))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&convoDir, "convo-dir", "", "Read conversations from this folder instead of discovering it")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory, relative to the project root (default from config: llm_convos)")
	addConfigFlags(cmd)

	return cmd
}
