package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/agexport/internal/display"
	"github.com/grovetools/agexport/internal/session"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool
	var convoDir string

	cmd := &cobra.Command{
		Use:   "list [project-root]",
		Short: "List conversation transcripts for a project",
		Long:  "List the conversation transcripts recorded for a project, with the file name export would write for each.",
		Args:  cobra.MaximumNArgs(1),
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

			dir, err := session.ResolveConvoDir(projects, projectRoot, convoDir)
			if err != nil {
				return err
			}

			transcripts, err := session.NewScanner().Scan(dir)
			if err != nil {
				return fmt.Errorf("failed to scan for transcripts: %w", err)
			}

			if jsonOutput {
				data, err := json.MarshalIndent(transcripts, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal transcripts to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			display.PrintTranscriptsTable(transcripts, cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&convoDir, "convo-dir", "", "Read conversations from this folder instead of discovering it")
	addConfigFlags(cmd)

	return cmd
}
