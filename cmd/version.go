package cmd

import (
	"encoding/json"
	"fmt"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/grovetools/agexport/cmd.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var ulogVersion = grovelogging.NewUnifiedLogger("agexport.cmd.version")

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				data, err := json.Marshal(map[string]string{
					"version":    Version,
					"commit":     Commit,
					"build_date": BuildDate,
				})
				if err != nil {
					return fmt.Errorf("failed to marshal version info: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			ulogVersion.Info("Version").
				Field("version", Version).
				Field("commit", Commit).
				Field("build_date", BuildDate).
				Pretty(fmt.Sprintf("agexport %s (commit %s, built %s)\n", Version, Commit, BuildDate)).
				PrettyOnly().
				Emit()
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
