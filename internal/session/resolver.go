package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrConvoDirNotFound is returned when no Claude project folder matches.
	ErrConvoDirNotFound = errors.New("no Claude Code conversations found for project")
	// ErrNoTranscripts is returned when a conversation folder holds no .jsonl files.
	ErrNoTranscripts = errors.New("no .jsonl files found")
)

var folderSeparatorRe = regexp.MustCompile(`[/\\_]`)

// DefaultProjectsDir returns ~/.claude/projects. Claude Code uses the same
// location on every platform.
func DefaultProjectsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".claude", "projects"), nil
}

// ProjectFolderName converts a project root to Claude's folder name, e.g.
// /Users/me/Code/my_app -> -Users-me-Code-my-app. Path separators and
// underscores all become hyphens.
func ProjectFolderName(projectRoot string) (string, error) {
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return folderSeparatorRe.ReplaceAllString(abs, "-"), nil
}

// FindConvoDir locates the conversation folder for projectRoot under
// projectsDir. It tries the exact folder name first, then any folder whose
// name contains the root with separators turned into hyphens.
func FindConvoDir(projectsDir, projectRoot string) (string, error) {
	folder, err := ProjectFolderName(projectRoot)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}

	convoDir := filepath.Join(projectsDir, folder)
	if isDir(convoDir) {
		return convoDir, nil
	}

	entries, err := os.ReadDir(projectsDir)
	if err == nil {
		needle := strings.NewReplacer("/", "-", "\\", "-").Replace(projectRoot)
		for _, e := range entries {
			if e.IsDir() && strings.Contains(e.Name(), needle) {
				return filepath.Join(projectsDir, e.Name()), nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s (looked in %s for %s)", ErrConvoDirNotFound, projectRoot, projectsDir, folder)
}

// ResolveConvoDir picks the conversation folder: the override when given
// (it must exist), otherwise the folder discovered for projectRoot.
func ResolveConvoDir(projectsDir, projectRoot, override string) (string, error) {
	if override != "" {
		if !isDir(override) {
			return "", fmt.Errorf("specified convo dir does not exist: %s", override)
		}
		return override, nil
	}
	return FindConvoDir(projectsDir, projectRoot)
}

// ListTranscripts returns the .jsonl files in dir, sorted by name.
func ListTranscripts(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranscripts, dir)
	}
	sort.Strings(matches)
	return matches, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
