package cmd

import (
	"os"
	"path/filepath"

	agexport_config "github.com/grovetools/agexport/config"
	"github.com/grovetools/agexport/internal/markdown"
	"github.com/grovetools/agexport/internal/session"
	core_config "github.com/grovetools/core/config"
	"github.com/spf13/cobra"
)

// addConfigFlags registers the flags every converting command shares.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config-file", "", "Load settings from a standalone YAML file instead of grove.yml")
	cmd.Flags().String("detail", "", "Set detail level for output ('summary' or 'full'). Overrides config.")
}

// loadConfig resolves settings: --config-file when given, otherwise the
// "agexport" extension of the grove config; --detail overrides either.
func loadConfig(cmd *cobra.Command) (agexport_config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	detailFlag, _ := cmd.Flags().GetString("detail")

	var cfg agexport_config.Config
	if configFile != "" {
		loaded, err := agexport_config.LoadFile(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	} else if coreCfg, err := core_config.LoadDefault(); err == nil {
		var ext agexport_config.Config
		if err := coreCfg.UnmarshalExtension("agexport", &ext); err == nil {
			cfg = ext
		}
	}

	if detailFlag != "" {
		cfg.Export.DetailLevel = detailFlag
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg.WithDefaults(), nil
}

func markdownOptions(cfg agexport_config.Config) markdown.Options {
	return markdown.Options{
		Title:         cfg.Export.Title,
		DetailLevel:   cfg.Export.DetailLevel,
		PreviewLength: cfg.Export.ToolResultPreview,
	}
}

func projectsDir(cfg agexport_config.Config) (string, error) {
	if cfg.Export.ProjectsDir != "" {
		return cfg.Export.ProjectsDir, nil
	}
	return session.DefaultProjectsDir()
}

// projectRootArg returns the absolute project root from args, or the cwd.
func projectRootArg(args []string) (string, error) {
	if len(args) > 0 {
		return filepath.Abs(args[0])
	}
	return os.Getwd()
}
