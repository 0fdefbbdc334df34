package chat

import (
	"encoding/json"
	"time"

	"github.com/parley-sh/parley/pkg/search"
)

// Event is one inbound frame from the assistant connection. Fields the
// client does not interpret (user_id, session_id echoes) pass through
// untouched.
type Event struct {
	UserID                string           `json:"user_id,omitempty"`
	SessionID             string           `json:"session_id,omitempty"`
	ChainOfThought        bool             `json:"chain_of_thought"`
	ChainOfThoughtMessage string           `json:"chain_of_thought_message,omitempty"`
	Message               string           `json:"message,omitempty"`
	SearchResults         search.ResultSet `json:"search_results,omitempty"`
}

// ParseEvent decodes a single JSON frame. A frame that is not a JSON object
// of the expected shape yields an error; callers skip such frames rather
// than corrupting the transcript.
func ParseEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, err
	}
	return ev, nil
}

// Entry converts the event into the transcript entry it stands for.
func (e Event) Entry() Message {
	msg := Message{
		Role:          RoleAssistant,
		Content:       e.Message,
		Reasoning:     e.ChainOfThought,
		ReasoningNote: e.ChainOfThoughtMessage,
		Timestamp:     time.Now(),
	}
	if len(e.SearchResults) > 0 && !e.SearchResults.IsEmpty() {
		msg.Results = e.SearchResults
	}
	return msg
}
