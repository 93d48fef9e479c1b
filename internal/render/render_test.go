package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/grovetools/agexport/internal/formatters"
	"github.com/grovetools/agexport/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuman(t *testing.T) {
	r := NewRenderer(Options{})

	tests := []struct {
		name    string
		payload transcript.Payload
		want    string
	}{
		{"plain text", transcript.PlainText("Fix the bug"), "Fix the bug"},
		{"nil payload", nil, ""},
		{
			name:    "tool result string",
			payload: transcript.Blocks{transcript.ToolResultBlock{Content: transcript.PlainText("ok")}},
			want:    "> **Tool result:** ok",
		},
		{
			name: "tool result sub-blocks",
			payload: transcript.Blocks{transcript.ToolResultBlock{Content: transcript.Blocks{
				transcript.TextBlock{Text: "first\nline"},
				transcript.UnknownBlock{Type: "image"},
				transcript.TextBlock{Text: "second"},
			}}},
			want: "> **Tool result:** first line\n> **Tool result:** second",
		},
		{
			name:    "tool result without content",
			payload: transcript.Blocks{transcript.ToolResultBlock{Content: nil}},
			want:    "",
		},
		{
			name: "text and tool result in order",
			payload: transcript.Blocks{
				transcript.ToolResultBlock{Content: transcript.PlainText("done")},
				transcript.TextBlock{Text: "now run tests"},
			},
			want: "> **Tool result:** done\nnow run tests",
		},
		{
			name: "other blocks ignored",
			payload: transcript.Blocks{
				transcript.UnknownBlock{Type: "image"},
				transcript.TextBlock{Text: "look at this"},
			},
			want: "look at this",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Human(tt.payload))
		})
	}
}

func TestHuman_TruncatesToolResults(t *testing.T) {
	r := NewRenderer(Options{})
	long := strings.Repeat("a", 500)

	got := r.Human(transcript.Blocks{transcript.ToolResultBlock{Content: transcript.PlainText(long)}})
	require.True(t, strings.HasPrefix(got, "> **Tool result:** "))
	preview := strings.TrimPrefix(got, "> **Tool result:** ")
	assert.Equal(t, strings.Repeat("a", 200)+"...", preview)

	nested := r.Human(transcript.Blocks{transcript.ToolResultBlock{Content: transcript.Blocks{transcript.TextBlock{Text: long}}}})
	assert.Equal(t, got, nested)
}

func TestHuman_PreviewLengthOption(t *testing.T) {
	r := NewRenderer(Options{PreviewLength: 5})
	got := r.Human(transcript.Blocks{transcript.ToolResultBlock{Content: transcript.PlainText("abcdefgh")}})
	assert.Equal(t, "> **Tool result:** abcde...", got)
}

func TestHuman_TruncationBound(t *testing.T) {
	r := NewRenderer(Options{})
	for _, n := range []int{0, 1, 199, 200, 201, 1000} {
		content := strings.Repeat("é", n)
		got := r.Human(transcript.Blocks{transcript.ToolResultBlock{Content: transcript.PlainText(content)}})
		preview := strings.TrimPrefix(got, "> **Tool result:** ")
		preview = strings.TrimSuffix(preview, "...")
		assert.LessOrEqual(t, utf8.RuneCountInString(preview), 200, "n=%d", n)
	}
}

func TestAssistant(t *testing.T) {
	r := NewRenderer(Options{})

	payload := transcript.Blocks{
		transcript.ReasoningBlock{Text: "let me think"},
		transcript.TextBlock{Text: "  I'll list the files.  "},
		transcript.ToolUseBlock{Name: "Bash", Input: map[string]any{"command": "ls -la", "description": "list files"}},
		transcript.TextBlock{Text: "   "},
		transcript.ToolUseBlock{Name: "mcp__github__create_issue", Input: map[string]any{}},
	}
	want := "I'll list the files.\n\n" +
		"```bash *(list files)*\nls -la\n```\n\n" +
		"*[Tool: mcp__github__create_issue]*"
	assert.Equal(t, want, r.Assistant(payload))
}

func TestAssistant_ReasoningOnlyIsEmpty(t *testing.T) {
	r := NewRenderer(Options{})
	assert.Equal(t, "", r.Assistant(transcript.Blocks{transcript.ReasoningBlock{Text: "secret"}}))
	assert.Equal(t, "", r.Assistant(nil))
}

func TestAssistant_PlainText(t *testing.T) {
	r := NewRenderer(Options{})
	assert.Equal(t, "Hi there!", r.Assistant(transcript.PlainText(" Hi there!\n")))
}

func TestAssistant_DetailLevel(t *testing.T) {
	payload := transcript.Blocks{transcript.ToolUseBlock{Name: "Write", Input: map[string]any{"file_path": "x.md", "content": "# Title"}}}

	assert.Equal(t, "*[Write: `x.md`]*", NewRenderer(Options{}).Assistant(payload))
	assert.Equal(t, "*[Write: `x.md`]*\n> # Title", NewRenderer(Options{DetailLevel: formatters.DetailFull}).Assistant(payload))
}

func TestRender_DispatchesOnKind(t *testing.T) {
	r := NewRenderer(Options{})
	payload := transcript.PlainText("hello")

	assert.Equal(t, "hello", r.Render(transcript.Record{Kind: transcript.KindHuman, Payload: payload}))
	assert.Equal(t, "hello", r.Render(transcript.Record{Kind: transcript.KindAgent, Payload: payload}))
	assert.Equal(t, "", r.Render(transcript.Record{Kind: transcript.KindOther, Payload: payload}))
}

func TestRenderer_CustomTool(t *testing.T) {
	r := NewRenderer(Options{})
	r.Tools().Register("NotebookEdit", func(input map[string]any, detailLevel string) string {
		return "*[Notebook edit]*"
	})
	got := r.Assistant(transcript.Blocks{transcript.ToolUseBlock{Name: "NotebookEdit"}})
	assert.Equal(t, "*[Notebook edit]*", got)
}
