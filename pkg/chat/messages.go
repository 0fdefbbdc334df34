package chat

import (
	"strings"
	"time"

	"github.com/parley-sh/parley/pkg/search"
)

// Message is one displayable transcript entry. Seq orders entries and
// identifies them for equality; it never renders.
type Message struct {
	Role          string           `json:"role"`
	Content       string           `json:"content"`
	Reasoning     bool             `json:"reasoning,omitempty"`
	ReasoningNote string           `json:"reasoning_note,omitempty"`
	Results       search.ResultSet `json:"results,omitempty"`
	Seq           uint64           `json:"seq"`
	Timestamp     time.Time        `json:"timestamp"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

func NewUserMessage(content string) Message {
	return Message{
		Role:      RoleUser,
		Content:   strings.TrimSpace(content),
		Timestamp: time.Now(),
	}
}

func NewAssistantMessage(content string) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewReasoningMessage creates the in-progress "thinking" placeholder shown
// while the assistant is still working. The note rides next to the spinner.
func NewReasoningMessage(note string) Message {
	return Message{
		Role:          RoleAssistant,
		Reasoning:     true,
		ReasoningNote: note,
		Timestamp:     time.Now(),
	}
}

func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

func (m Message) IsAssistant() bool {
	return m.Role == RoleAssistant
}

func (m Message) IsEmpty() bool {
	return strings.TrimSpace(m.Content) == ""
}

func (m Message) HasResults() bool {
	return m.Results != nil && !m.Results.IsEmpty()
}

func (m Message) WithSeq(seq uint64) Message {
	m.Seq = seq
	return m
}
