package formatters

import (
	"fmt"
	"strings"
)

// Detail levels accepted by tool formatters.
const (
	DetailSummary = "summary"
	DetailFull    = "full"
)

// ToolFormatter renders the input of a tool call as a Markdown fragment.
type ToolFormatter func(input map[string]any, detailLevel string) string

// Registry maps tool names to formatters. Names without an entry are
// rendered by the fallback, so an unknown tool never fails.
type Registry struct {
	formatters map[string]ToolFormatter
	fallback   func(name string) string
}

// NewRegistry returns a registry holding the built-in Claude Code tools.
func NewRegistry() *Registry {
	return &Registry{
		formatters: map[string]ToolFormatter{
			"Bash":      FormatBashTool,
			"Read":      FormatReadTool,
			"Write":     FormatWriteTool,
			"Edit":      FormatEditTool,
			"Glob":      FormatGlobTool,
			"Grep":      FormatGrepTool,
			"WebSearch": FormatWebSearchTool,
			"WebFetch":  FormatWebFetchTool,
			"TodoWrite": FormatTodoWriteTool,
			"Task":      FormatTaskTool,
			"Skill":     FormatSkillTool,
		},
		fallback: FormatUnknownTool,
	}
}

// Register adds or replaces the formatter for a tool name.
func (r *Registry) Register(name string, f ToolFormatter) {
	r.formatters[name] = f
}

// Format renders a tool call.
func (r *Registry) Format(name string, input map[string]any, detailLevel string) string {
	if f, ok := r.formatters[name]; ok {
		return f(input, detailLevel)
	}
	return r.fallback(name)
}

// Preview cuts s to at most limit characters, flattens newlines to spaces
// and appends "..." when anything was cut.
func Preview(s string, limit int) string {
	runes := []rune(s)
	truncated := limit >= 0 && len(runes) > limit
	if truncated {
		runes = runes[:limit]
	}
	out := strings.ReplaceAll(string(runes), "\n", " ")
	if truncated {
		out += "..."
	}
	return out
}

// stringArg reads a tool argument as text. Missing keys give "".
func stringArg(input map[string]any, key string) string {
	v, ok := input[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// FormatBashTool renders the command as a fenced bash block, labelled with
// the italic description when one is given.
func FormatBashTool(input map[string]any, detailLevel string) string {
	label := ""
	if desc := stringArg(input, "description"); desc != "" {
		label = fmt.Sprintf(" *(%s)*", desc)
	}
	return fmt.Sprintf("```bash%s\n%s\n```", label, stringArg(input, "command"))
}

func FormatReadTool(input map[string]any, detailLevel string) string {
	return fmt.Sprintf("*[Read: `%s`]*", stringArg(input, "file_path"))
}

// FormatWriteTool shows only the path; the full detail level adds a one-line
// preview of the written content.
func FormatWriteTool(input map[string]any, detailLevel string) string {
	out := fmt.Sprintf("*[Write: `%s`]*", stringArg(input, "file_path"))
	if detailLevel == DetailFull {
		if content := stringArg(input, "content"); content != "" {
			out += "\n> " + Preview(content, 100)
		}
	}
	return out
}

// FormatEditTool shows only the path; the full detail level adds previews of
// the replaced and replacement text.
func FormatEditTool(input map[string]any, detailLevel string) string {
	out := fmt.Sprintf("*[Edit: `%s`]*", stringArg(input, "file_path"))
	if detailLevel == DetailFull {
		oldString := stringArg(input, "old_string")
		newString := stringArg(input, "new_string")
		if oldString != "" || newString != "" {
			out += fmt.Sprintf("\n> - `%s`\n> + `%s`", Preview(oldString, 60), Preview(newString, 60))
		}
	}
	return out
}

func FormatGlobTool(input map[string]any, detailLevel string) string {
	return fmt.Sprintf("*[Glob: `%s`]*", stringArg(input, "pattern"))
}

func FormatGrepTool(input map[string]any, detailLevel string) string {
	return fmt.Sprintf("*[Grep: `%s`]*", stringArg(input, "pattern"))
}

func FormatWebSearchTool(input map[string]any, detailLevel string) string {
	return fmt.Sprintf(`*[Web search: "%s"]*`, stringArg(input, "query"))
}

func FormatWebFetchTool(input map[string]any, detailLevel string) string {
	return fmt.Sprintf("*[Fetch: %s]*", stringArg(input, "url"))
}

// FormatTodoWriteTool formats the input for TodoWrite, one line per item
// with its status tag.
func FormatTodoWriteTool(input map[string]any, detailLevel string) string {
	todos, _ := input["todos"].([]any)

	var checklist strings.Builder
	checklist.WriteString("*[Todo update:]*\n")
	for i, raw := range todos {
		item, _ := raw.(map[string]any)
		status := "?"
		if _, ok := item["status"]; ok {
			status = stringArg(item, "status")
		}
		checklist.WriteString(fmt.Sprintf("  - [%s] %s", status, stringArg(item, "content")))
		if i < len(todos)-1 {
			checklist.WriteString("\n")
		}
	}
	return checklist.String()
}

func FormatTaskTool(input map[string]any, detailLevel string) string {
	return fmt.Sprintf("*[Spawned agent: %s]*", stringArg(input, "description"))
}

func FormatSkillTool(input map[string]any, detailLevel string) string {
	return fmt.Sprintf("*[Skill: %s]*", stringArg(input, "skill"))
}

// FormatUnknownTool is the fallback for tools without a formatter.
func FormatUnknownTool(name string) string {
	if name == "" {
		name = "unknown"
	}
	return fmt.Sprintf("*[Tool: %s]*", name)
}
