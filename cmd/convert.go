package cmd

import (
	"fmt"

	"github.com/grovetools/agexport/internal/markdown"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"
)

var ulogConvert = grovelogging.NewUnifiedLogger("agexport.cmd.convert")

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input.jsonl> [output.md]",
		Short: "Convert one transcript to Markdown",
		Long:  "Convert a Claude Code conversation .jsonl file to readable Markdown. Writes to stdout unless an output path is given.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			opts := markdownOptions(cfg)
			inputPath := args[0]

			if len(args) == 2 {
				outputPath := args[1]
				if err := markdown.ConvertToFile(inputPath, outputPath, opts); err != nil {
					return err
				}
				ulogConvert.Info("Transcript converted").
					Field("input", inputPath).
					Field("output", outputPath).
					Pretty(fmt.Sprintf("Written to %s\n", outputPath)).
					PrettyOnly().
					Emit()
				return nil
			}

			doc, err := markdown.Convert(inputPath, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		},
	}

	addConfigFlags(cmd)
	return cmd
}
