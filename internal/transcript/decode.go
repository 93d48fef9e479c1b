package transcript

import (
	"bytes"
	"encoding/json"
)

// rawEntry mirrors the top-level fields of a Claude transcript line.
type rawEntry struct {
	Type      string          `json:"type"`
	UserType  string          `json:"userType"`
	SessionID string          `json:"sessionId"`
	UUID      string          `json:"uuid"`
	Timestamp json.RawMessage `json:"timestamp"`
	Message   json.RawMessage `json:"message"` // object, bare string, or absent
}

// rawBlock is the union of every content block shape we read.
type rawBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text"`
	Thinking  string          `json:"thinking"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input"`
	ToolUseID string          `json:"tool_use_id"`
	Content   json.RawMessage `json:"content"`
	IsError   bool            `json:"is_error"`
}

// DecodeLine decodes and classifies a single JSONL line. An error means the
// line is not a JSON object of the expected shape and should be skipped.
func DecodeLine(line []byte) (Record, error) {
	var raw rawEntry
	if err := json.Unmarshal(line, &raw); err != nil {
		return Record{}, err
	}

	rec := Record{
		Type:      raw.Type,
		UserType:  raw.UserType,
		SessionID: raw.SessionID,
		UUID:      raw.UUID,
		Timestamp: raw.Timestamp,
		Payload:   decodeMessage(raw.Message),
	}
	rec.Kind, rec.Origin = Classify(rec.Type, rec.Payload)
	return rec, nil
}

// decodeMessage extracts the content payload from the "message" field,
// which is normally an object with a "content" key but may be a bare string.
func decodeMessage(raw json.RawMessage) Payload {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '"' {
		return decodePayload(raw)
	}

	var msg struct {
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil
	}
	return decodePayload(msg.Content)
}

// decodePayload handles content that "can be string or []block".
// Anything else (null, objects, numbers) yields nil.
func decodePayload(raw json.RawMessage) Payload {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return PlainText(s)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		blocks := make(Blocks, 0, len(items))
		for _, item := range items {
			if b, ok := decodeBlock(item); ok {
				blocks = append(blocks, b)
			}
		}
		return blocks
	}
	return nil
}

func decodeBlock(raw json.RawMessage) (Block, bool) {
	var item rawBlock
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, false
	}

	switch item.Type {
	case "text":
		return TextBlock{Text: item.Text}, true
	case "thinking", "redacted_thinking":
		return ReasoningBlock{Text: item.Thinking}, true
	case "tool_use":
		input := map[string]any{}
		if len(item.Input) > 0 {
			// a malformed input leaves the map empty; formatters fall back to ""
			_ = json.Unmarshal(item.Input, &input)
		}
		if input == nil {
			input = map[string]any{}
		}
		return ToolUseBlock{ID: item.ID, Name: item.Name, Input: input}, true
	case "tool_result":
		var content Payload = PlainText("")
		if len(bytes.TrimSpace(item.Content)) > 0 {
			content = decodePayload(item.Content)
		}
		return ToolResultBlock{ToolUseID: item.ToolUseID, Content: content, IsError: item.IsError}, true
	default:
		return UnknownBlock{Type: item.Type}, true
	}
}
