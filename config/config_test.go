package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agexport.yml")
	content := `export:
  detail_level: full
  tool_result_preview: 80
  output_dir: docs/convos
  title: Design sessions
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "full", cfg.Export.DetailLevel)
	assert.Equal(t, 80, cfg.Export.ToolResultPreview)
	assert.Equal(t, "docs/convos", cfg.Export.OutputDir)
	assert.Equal(t, "Design sessions", cfg.Export.Title)
	assert.Empty(t, cfg.Export.ProjectsDir)
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	badDetail := filepath.Join(dir, "detail.yml")
	require.NoError(t, os.WriteFile(badDetail, []byte("export:\n  detail_level: verbose\n"), 0644))
	_, err := LoadFile(badDetail)
	assert.ErrorContains(t, err, "detail_level")

	badYAML := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(badYAML, []byte("export: [unclosed"), 0644))
	_, err = LoadFile(badYAML)
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	assert.Equal(t, DefaultDetailLevel, cfg.Export.DetailLevel)
	assert.Equal(t, DefaultToolResultPreview, cfg.Export.ToolResultPreview)
	assert.Equal(t, DefaultOutputDir, cfg.Export.OutputDir)
	assert.Equal(t, DefaultTitle, cfg.Export.Title)

	kept := Config{Export: ExportConfig{OutputDir: "out"}}.WithDefaults()
	assert.Equal(t, "out", kept.Export.OutputDir)
}
