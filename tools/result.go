package tools

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrMissingParam  = errors.New("missing required parameter")
	ErrInvalidParams = errors.New("invalid tool parameters")
	ErrCalendar      = errors.New("calendar export failed")
	ErrPersist       = errors.New("memory persist failed")
)

// toolError reads "<sentinel>: <detail>" and matches its sentinel with errors.Is.
type toolError struct {
	sentinel error
	detail   string
}

func (e *toolError) Error() string        { return e.sentinel.Error() + ": " + e.detail }
func (e *toolError) Is(target error) bool { return target == e.sentinel }

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type Kind int

const (
	KindError Kind = iota
	KindText
	KindSuccess
	KindPantry
	KindPayload
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindText:
		return "text"
	case KindSuccess:
		return "success"
	case KindPantry:
		return "pantry"
	case KindPayload:
		return "payload"
	default:
		return "unknown"
	}
}

// Result is what one user turn produces. Its JSON form matches the shape the
// CLI renders: {"status","message",...}, {"response"}, {"pantry"} or the
// model's own object.
type Result struct {
	Kind     Kind
	Message  string
	Pantry   []string
	FilePath string
	// Text is the conversational reply for KindText.
	Text string
	// Payload is the model's object for KindPayload.
	Payload map[string]any
	// Raw is the JSON span for KindPayload, or the model's text for KindError
	// when one was received.
	Raw string
	Err error
}

func Success(message string) Result {
	return Result{Kind: KindSuccess, Message: message}
}

// Failed builds an error-kind result. message is shown to the user; err keeps
// the sentinel for errors.Is.
func Failed(message string, err error) Result {
	return Result{Kind: KindError, Message: message, Err: err}
}

func (r Result) IsError() bool { return r.Kind == KindError }

func (r Result) Status() string {
	switch r.Kind {
	case KindError:
		return StatusError
	case KindSuccess:
		return StatusSuccess
	default:
		return ""
	}
}

type wireResult struct {
	Status      string `json:"status,omitempty"`
	Message     string `json:"message,omitempty"`
	FilePath    string `json:"file_path,omitempty"`
	Response    string `json:"response,omitempty"`
	RawResponse string `json:"raw_response,omitempty"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindPantry:
		items := r.Pantry
		if items == nil {
			items = []string{}
		}
		return json.Marshal(struct {
			Pantry []string `json:"pantry"`
		}{items})
	case KindPayload:
		if r.Payload == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(r.Payload)
	case KindText:
		// an empty reply still renders as {"response": ""}
		return json.Marshal(struct {
			Response string `json:"response"`
		}{r.Text})
	case KindError:
		return json.Marshal(wireResult{Status: StatusError, Message: r.Message, RawResponse: r.Raw})
	default:
		return json.Marshal(wireResult{Status: r.Status(), Message: r.Message, FilePath: r.FilePath})
	}
}
