package interpret

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Field names carried by a tool call object.
const (
	ToolNameField   = "tool_code"
	ToolParamsField = "tool_params"
)

type Kind int

const (
	KindText Kind = iota
	KindPayload
	KindToolCall
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPayload:
		return "payload"
	case KindToolCall:
		return "tool_call"
	default:
		return "unknown"
	}
}

// ToolCall is a parsed tool invocation. Params holds the decoded value of
// tool_params as-is; it is usually, but not necessarily, a JSON object.
type ToolCall struct {
	Name   string
	Params any
}

// Outcome is the classification of one model reply.
type Outcome struct {
	Kind Kind
	// Text is set for KindText.
	Text string
	// Payload is set for KindPayload.
	Payload map[string]any
	// Call is set for KindToolCall.
	Call ToolCall
	// Raw is the JSON span for KindPayload and KindToolCall.
	Raw string
}

// fence matches a markdown code fence marker with an optional language tag.
// The tag is only consumed when the marker ends its line.
var fence = regexp.MustCompile("```(?:[A-Za-z0-9_+.-]*[ \t]*\r?\n)?")

// Classify maps text to exactly one Outcome. It never fails: a span that does
// not parse falls through to text.
func Classify(text string) Outcome {
	if span, ok := braceSpan(text); ok {
		var obj map[string]any
		if err := json.Unmarshal([]byte(span), &obj); err == nil && obj != nil {
			name, hasName := obj[ToolNameField]
			params, hasParams := obj[ToolParamsField]
			if hasName && hasParams {
				return Outcome{
					Kind: KindToolCall,
					Call: ToolCall{Name: toolName(name), Params: params},
					Raw:  span,
				}
			}
			return Outcome{Kind: KindPayload, Payload: obj, Raw: span}
		}
	}
	return Outcome{Kind: KindText, Text: CleanText(text)}
}

// CleanText strips code fence markers and surrounding whitespace.
func CleanText(text string) string {
	return strings.TrimSpace(fence.ReplaceAllString(strings.TrimSpace(text), ""))
}

// braceSpan returns text from the first '{' through the last '}'.
func braceSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(text, '}')
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// toolName renders a tool_code value. Non-string values keep their JSON form so
// they reach dispatch and fail there as unknown tools.
func toolName(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
