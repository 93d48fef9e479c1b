// Package transcript decodes Claude Code JSONL transcripts into typed records.
package transcript

import (
	"encoding/json"
)

// Kind is the role a record plays in the conversation.
type Kind int

const (
	// KindOther covers snapshots, queue operations and anything else that
	// is not part of the conversation.
	KindOther Kind = iota
	// KindHuman is a record of type "user".
	KindHuman
	// KindAgent is a record of type "assistant".
	KindAgent
)

func (k Kind) String() string {
	switch k {
	case KindHuman:
		return "human"
	case KindAgent:
		return "agent"
	default:
		return "other"
	}
}

// Origin tells genuine human input apart from tool responses that the
// transcript files under the same "user" type.
type Origin int

const (
	OriginAutomated Origin = iota
	OriginGenuine
)

func (o Origin) String() string {
	if o == OriginGenuine {
		return "genuine"
	}
	return "automated"
}

// Record is one decoded transcript line.
type Record struct {
	Kind      Kind
	Origin    Origin
	Type      string // raw "type" field
	UserType  string // "external" for input typed by a person
	SessionID string
	UUID      string
	// Timestamp is kept raw; it may be an ISO-8601 string or epoch number.
	Timestamp json.RawMessage
	Payload   Payload
}

// IsGenuine reports whether the record is a human turn typed by a person.
func (r Record) IsGenuine() bool {
	return r.Kind == KindHuman && r.Origin == OriginGenuine
}

// Payload is the content of a message: PlainText or Blocks.
// A nil Payload means the content was absent or of an unusable shape.
type Payload interface {
	isPayload()
}

// PlainText is content given as a bare string.
type PlainText string

// Blocks is content given as an ordered list of typed blocks.
type Blocks []Block

func (PlainText) isPayload() {}
func (Blocks) isPayload()    {}

// Block is one element of a Blocks payload.
type Block interface {
	BlockType() string
}

// TextBlock holds prose, possibly wrapped in IDE or reminder marker tags.
type TextBlock struct {
	Text string
}

// ToolUseBlock is a tool invocation issued by the assistant.
type ToolUseBlock struct {
	ID    string
	Name  string
	Input map[string]any
}

// ToolResultBlock is the output of an earlier tool invocation. Content is
// PlainText, Blocks, or nil.
type ToolResultBlock struct {
	ToolUseID string
	Content   Payload
	IsError   bool
}

// ReasoningBlock is extended thinking. It is never rendered.
type ReasoningBlock struct {
	Text string
}

// UnknownBlock is any block type not modelled above (images, documents).
type UnknownBlock struct {
	Type string
}

func (TextBlock) BlockType() string       { return "text" }
func (ToolUseBlock) BlockType() string    { return "tool_use" }
func (ToolResultBlock) BlockType() string { return "tool_result" }
func (ReasoningBlock) BlockType() string  { return "thinking" }
func (b UnknownBlock) BlockType() string  { return b.Type }
