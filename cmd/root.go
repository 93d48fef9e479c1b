package cmd

import (
	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for agexport.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"agexport",
		"Convert Claude Code conversation transcripts to Markdown",
	)

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
