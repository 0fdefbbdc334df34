package chat

import "time"

// Request is the outbound frame sent for one user submission.
type Request struct {
	ID          int64  `json:"id"`
	UserID      string `json:"user_id"`
	SessionID   string `json:"session_id"`
	UserMessage string `json:"user_message"`
	Search      bool   `json:"search"`
}

// NewRequest builds a submission request. The id is clock-derived and unique
// per submission within a session.
func NewRequest(userID, sessionID, message string, searchEnabled bool) Request {
	return Request{
		ID:          time.Now().UnixNano(),
		UserID:      userID,
		SessionID:   sessionID,
		UserMessage: message,
		Search:      searchEnabled,
	}
}
