package memory

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one text turn of the session transcript.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text,omitempty"`
}

// Conversation is the running transcript of a session. It is owned by whoever
// drives the session and is passed explicitly to every model call.
type Conversation struct {
	messages []Message
}

func NewConversation(msgs ...Message) *Conversation {
	return &Conversation{messages: append([]Message(nil), msgs...)}
}

func (c *Conversation) Append(role Role, text string) {
	c.messages = append(c.messages, Message{Role: role, Text: text})
}

// Messages returns a copy of the transcript, oldest first.
func (c *Conversation) Messages() []Message {
	return append([]Message(nil), c.messages...)
}

func (c *Conversation) Len() int { return len(c.messages) }
