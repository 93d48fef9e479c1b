package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/agexport/internal/markdown"
	"github.com/grovetools/agexport/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProject(t *testing.T) (projectsDir, projectRoot, convoDir string) {
	t.Helper()
	projectsDir = t.TempDir()
	projectRoot = t.TempDir()

	folder, err := session.ProjectFolderName(projectRoot)
	require.NoError(t, err)
	convoDir = filepath.Join(projectsDir, folder)
	require.NoError(t, os.MkdirAll(convoDir, 0755))
	return projectsDir, projectRoot, convoDir
}

func TestExporter_Run(t *testing.T) {
	projectsDir, projectRoot, convoDir := setupProject(t)

	first := `{"type":"user","userType":"external","timestamp":"2025-01-01T12:00:00Z","message":{"content":"Fix the bug"}}
{"type":"assistant","message":{"content":[{"type":"text","text":"Done"}]}}`
	second := `{"type":"user","userType":"external","timestamp":"2025-01-02T08:30:00Z","message":{"content":"Write docs"}}`
	require.NoError(t, os.WriteFile(filepath.Join(convoDir, "aaaa1111-x.jsonl"), []byte(first), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(convoDir, "bbbb2222-y.jsonl"), []byte(second), 0644))

	var seen []FileResult
	result, err := New(projectsDir, "llm_convos", markdown.Options{}).Run(projectRoot, "", func(fr FileResult) {
		seen = append(seen, fr)
	})
	require.NoError(t, err)

	assert.Equal(t, convoDir, result.ConvoDir)
	assert.Equal(t, filepath.Join(projectRoot, "llm_convos"), result.OutputDir)
	assert.Equal(t, 0, result.Failed())
	require.Len(t, seen, 2)

	assert.Equal(t, filepath.Join(result.OutputDir, "2025-01-01_1200_Fix_the_bug.md"), seen[0].Output)
	assert.Equal(t, 1, seen[0].Turns)
	assert.Equal(t, filepath.Join(result.OutputDir, "2025-01-02_0830_Write_docs.md"), seen[1].Output)

	doc, err := os.ReadFile(seen[0].Output)
	require.NoError(t, err)
	want, err := markdown.Convert(filepath.Join(convoDir, "aaaa1111-x.jsonl"), markdown.Options{})
	require.NoError(t, err)
	assert.Equal(t, want, string(doc))
}

func TestExporter_NameCollision(t *testing.T) {
	projectsDir, projectRoot, convoDir := setupProject(t)
	line := `{"type":"user","userType":"external","timestamp":"2025-01-01T12:00:00Z","message":{"content":"same"}}`
	require.NoError(t, os.WriteFile(filepath.Join(convoDir, "aaaaaaaa-1.jsonl"), []byte(line), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(convoDir, "bbbbbbbb-2.jsonl"), []byte(line), 0644))

	result, err := New(projectsDir, "out", markdown.Options{}).Run(projectRoot, "", nil)
	require.NoError(t, err)
	require.Len(t, result.Files, 2)
	assert.Equal(t, "2025-01-01_1200_same.md", filepath.Base(result.Files[0].Output))
	assert.Equal(t, "2025-01-01_1200_same_bbbbbbbb.md", filepath.Base(result.Files[1].Output))
}

func TestExporter_ConvoDirOverride(t *testing.T) {
	convoDir := t.TempDir()
	projectRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(convoDir, "abc.jsonl"), []byte(`not json`), 0644))

	result, err := New("/nonexistent", "llm_convos", markdown.Options{}).Run(projectRoot, convoDir, nil)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.NoError(t, result.Files[0].Err)
	assert.Equal(t, "unknown_abc.md", filepath.Base(result.Files[0].Output))
}

func TestExporter_NoConversations(t *testing.T) {
	_, err := New(t.TempDir(), "llm_convos", markdown.Options{}).Run(t.TempDir(), "", nil)
	assert.ErrorIs(t, err, session.ErrConvoDirNotFound)

	projectsDir, projectRoot, _ := setupProject(t)
	_, err = New(projectsDir, "llm_convos", markdown.Options{}).Run(projectRoot, "", nil)
	assert.ErrorIs(t, err, session.ErrNoTranscripts)
}
