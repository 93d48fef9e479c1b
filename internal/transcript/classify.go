package transcript

// Classify maps a record's declared type and content shape to its kind and,
// for human records, its origin.
//
// A "user" record is genuine when its content is a bare string or when at
// least one block is text. A block list holding only tool results (or no
// usable content at all) is an automated tool response. Mixed text and
// tool_result content counts as genuine.
func Classify(recordType string, payload Payload) (Kind, Origin) {
	switch recordType {
	case "user":
		if HasHumanText(payload) {
			return KindHuman, OriginGenuine
		}
		return KindHuman, OriginAutomated
	case "assistant":
		return KindAgent, OriginAutomated
	default:
		return KindOther, OriginAutomated
	}
}

// HasHumanText reports whether a payload carries text typed by a person.
func HasHumanText(payload Payload) bool {
	switch p := payload.(type) {
	case PlainText:
		return true
	case Blocks:
		for _, b := range p {
			if _, ok := b.(TextBlock); ok {
				return true
			}
		}
	}
	return false
}
