package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/agexport/internal/session"
	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

const sessionAlpha = `{"type":"user","userType":"external","sessionId":"session-alpha","timestamp":"2025-01-01T12:00:00Z","message":{"role":"user","content":"Fix the login bug"}}
{"type":"assistant","sessionId":"session-alpha","timestamp":"2025-01-01T12:00:05Z","message":{"role":"assistant","content":[{"type":"thinking","thinking":"hidden"},{"type":"text","text":"Looking at it."},{"type":"tool_use","id":"t1","name":"Bash","input":{"command":"go test ./...","description":"Run tests"}}]}}
{"type":"user","sessionId":"session-alpha","timestamp":"2025-01-01T12:00:09Z","message":{"role":"user","content":[{"type":"tool_result","tool_use_id":"t1","content":"ok"}]}}
{"type":"user","userType":"external","sessionId":"session-alpha","timestamp":"2025-01-01T12:01:00Z","message":{"role":"user","content":[{"type":"text","text":"<system-reminder>be brief</system-reminder>Thanks"}]}}
`

const sessionBeta = `{"type":"user","userType":"external","sessionId":"session-beta","timestamp":"2025-01-02T10:00:00Z","message":{"role":"user","content":"Write the docs"}}
not json
{"type":"assistant","sessionId":"session-beta","message":{"role":"assistant","content":[{"type":"text","text":"Done."}]}}
`

// setupMockClaudeDir creates a project and its ~/.claude/projects folder.
func setupMockClaudeDir(ctx *harness.Context) error {
	homeDir := ctx.NewDir("home")
	projectRoot := ctx.NewDir("project")
	if err := fs.CreateDir(projectRoot); err != nil {
		return err
	}

	folder, err := session.ProjectFolderName(projectRoot)
	if err != nil {
		return err
	}
	convoDir := filepath.Join(homeDir, ".claude", "projects", folder)
	if err := fs.CreateDir(convoDir); err != nil {
		return err
	}

	if err := fs.WriteString(filepath.Join(convoDir, "session-alpha.jsonl"), sessionAlpha); err != nil {
		return fmt.Errorf("failed to write session-alpha.jsonl: %w", err)
	}
	if err := fs.WriteString(filepath.Join(convoDir, "session-beta.jsonl"), sessionBeta); err != nil {
		return fmt.Errorf("failed to write session-beta.jsonl: %w", err)
	}

	ctx.Set("mock_home", homeDir)
	ctx.Set("project_root", projectRoot)
	ctx.Set("convo_dir", convoDir)
	return nil
}

// ConvertScenario tests the 'agexport convert' command
func ConvertScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "agexport-convert-command",
		Steps: []harness.Step{
			harness.NewStep("Setup mock Claude directory", setupMockClaudeDir),
			harness.NewStep("Run 'agexport convert' to stdout", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				input := filepath.Join(ctx.GetString("convo_dir"), "session-alpha.jsonl")
				cmd := command.New(bin, "convert", input).Env("HOME=" + ctx.GetString("mock_home"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "agexport convert should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "# Claude Code Conversation", "Should print the title"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "## Human (1)", "Should number the first human turn"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "## Human (2)", "Should number the second human turn"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "`go test ./...`", "Should summarize the Bash call"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "> **Tool result:** ok", "Should preview the tool result"); err != nil {
					return err
				}
				if err := assert.NotContains(result.Stdout, "be brief", "Should strip system reminders"); err != nil {
					return err
				}
				return assert.NotContains(result.Stdout, "hidden", "Should omit reasoning blocks")
			}),
			harness.NewStep("Run 'agexport convert' to a file", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				input := filepath.Join(ctx.GetString("convo_dir"), "session-alpha.jsonl")
				output := filepath.Join(ctx.GetString("project_root"), "out", "alpha.md")
				cmd := command.New(bin, "convert", input, output).Env("HOME=" + ctx.GetString("mock_home"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "agexport convert should exit successfully"); err != nil {
					return err
				}
				data, err := os.ReadFile(output)
				if err != nil {
					return fmt.Errorf("output file was not written: %w", err)
				}
				return assert.Contains(string(data), "Fix the login bug", "Output file should contain the conversation")
			}),
			harness.NewStep("Run 'agexport convert' on a missing file", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				cmd := command.New(bin, "convert", filepath.Join(ctx.GetString("project_root"), "missing.jsonl"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("expected agexport convert to fail for a missing input")
				}
				return nil
			}),
		},
	}
}

// ExportScenario tests the 'agexport export' command
func ExportScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "agexport-export-command",
		Steps: []harness.Step{
			harness.NewStep("Setup mock Claude directory", setupMockClaudeDir),
			harness.NewStep("Run 'agexport export'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				projectRoot := ctx.GetString("project_root")
				cmd := command.New(bin, "export", projectRoot).Env("HOME=" + ctx.GetString("mock_home"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "agexport export should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "Found 2 conversation(s)", "Should report discovered transcripts"); err != nil {
					return err
				}

				outDir := filepath.Join(projectRoot, "llm_convos")
				for _, name := range []string{
					"2025-01-01_1200_Fix_the_login_bug.md",
					"2025-01-02_1000_Write_the_docs.md",
				} {
					if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
						return fmt.Errorf("expected %s to be exported: %w", name, err)
					}
				}
				return nil
			}),
			harness.NewStep("Run 'agexport export' for an unknown project", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				other := ctx.NewDir("elsewhere")
				if err := fs.CreateDir(other); err != nil {
					return err
				}
				cmd := command.New(bin, "export", other).Env("HOME=" + ctx.GetString("mock_home"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("expected agexport export to fail without a conversation folder")
				}
				return nil
			}),
		},
	}
}

// ListScenario tests the 'agexport list' command
func ListScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "agexport-list-command",
		Steps: []harness.Step{
			harness.NewStep("Setup mock Claude directory", setupMockClaudeDir),
			harness.NewStep("Run 'agexport list'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				cmd := command.New(bin, "list", ctx.GetString("project_root")).Env("HOME=" + ctx.GetString("mock_home"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "agexport list should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "SESSION ID", "Should print table header"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "session-alpha", "Should list session-alpha"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "Write_the_docs.md", "Should show the export file name")
			}),
			harness.NewStep("Run 'agexport list --json'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}

				cmd := command.New(bin, "list", "--json", "--convo-dir", ctx.GetString("convo_dir"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode != 0 {
					return fmt.Errorf("agexport list --json failed: %s", result.Stderr)
				}

				var transcripts []map[string]interface{}
				if err := json.Unmarshal([]byte(result.Stdout), &transcripts); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				if len(transcripts) != 2 {
					return fmt.Errorf("expected 2 transcripts in JSON output, got %d", len(transcripts))
				}
				for _, t := range transcripts {
					for _, key := range []string{"sessionId", "logFilePath", "turns", "outputName"} {
						if _, ok := t[key]; !ok {
							return fmt.Errorf("missing %s field in JSON output", key)
						}
					}
				}
				return nil
			}),
		},
	}
}
