package chat

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/parley-sh/parley/pkg/logger"
)

// Sender is the narrow send capability the session needs from a connection.
// The connection itself (dial, read pump, teardown) lives elsewhere.
type Sender interface {
	SendJSON(v interface{}) error
}

var (
	ErrNotConnected = errors.New("connection is not open")
	ErrEmptyMessage = errors.New("message is empty")
)

// Session owns the transcript for one connection's lifetime. Mutations come
// from exactly two places, user submission and inbound frames, and are
// serialized by the mutex; observers get defensive copies.
type Session struct {
	mu        sync.Mutex
	entries   []Message
	seq       uint64
	pending   bool
	connected bool
	sender    Sender
	userID    string
	sessionID string
	onChange  func([]Message)
}

func NewSession(userID, sessionID string) *Session {
	return &Session{
		userID:    userID,
		sessionID: sessionID,
	}
}

// Attach supplies an open connection. Called at startup and again after a
// reconnect; the transcript carries over.
func (s *Session) Attach(sender Sender) {
	s.mu.Lock()
	s.sender = sender
	s.connected = true
	s.mu.Unlock()
}

// OnChange registers the presentation-layer hook, invoked with a transcript
// snapshot after every mutation.
func (s *Session) OnChange(fn func([]Message)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Submit appends the user's entry and sends the request. Blank text or a
// closed connection make it a no-op: no entry, no pending state.
func (s *Session) Submit(text string, searchEnabled bool) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyMessage
	}

	s.mu.Lock()
	if !s.connected || s.sender == nil {
		s.mu.Unlock()
		return ErrNotConnected
	}

	s.seq++
	s.entries = Append(s.entries, NewUserMessage(trimmed).WithSeq(s.seq))

	req := NewRequest(s.userID, s.sessionID, trimmed, searchEnabled)
	sender := s.sender
	if err := sender.SendJSON(req); err != nil {
		s.mu.Unlock()
		s.notifyChange()
		logger.Error("Failed to send request %d: %v", req.ID, err)
		return fmt.Errorf("failed to send request: %w", err)
	}

	s.pending = true
	s.mu.Unlock()

	s.notifyChange()
	logger.Debug("Submitted request %d (search=%v, %d chars)", req.ID, searchEnabled, len(trimmed))
	return nil
}

// HandleFrame folds one inbound frame into the transcript. Malformed frames
// are skipped: a bad frame must not corrupt a long-lived transcript.
func (s *Session) HandleFrame(data []byte) {
	ev, err := ParseEvent(data)
	if err != nil {
		logger.Debug("Skipping malformed frame (%d bytes): %v", len(data), err)
		return
	}

	s.mu.Lock()
	s.seq++
	s.entries = Reduce(s.entries, ev.Entry().WithSeq(s.seq))
	if !ev.ChainOfThought && ev.Message != "" {
		s.pending = false
	}
	s.mu.Unlock()

	s.notifyChange()
}

// HandleDisconnect freezes the session: no further events can arrive and
// submissions are refused until a fresh connection is attached. The
// transcript itself is left as-is for the UI to keep showing.
func (s *Session) HandleDisconnect(err error) {
	s.mu.Lock()
	s.connected = false
	s.pending = false
	s.sender = nil
	s.mu.Unlock()

	if err != nil {
		logger.Warn("Connection closed: %v", err)
	} else {
		logger.Info("Connection closed")
	}
}

// Transcript returns a copy of the current entries.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.entries))
	copy(out, s.entries)
	return out
}

// Pending reports whether a submission is awaiting its answer.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Connected reports whether a connection is currently attached.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Session) notifyChange() {
	s.mu.Lock()
	fn := s.onChange
	snapshot := make([]Message, len(s.entries))
	copy(snapshot, s.entries)
	s.mu.Unlock()

	if fn != nil {
		fn(snapshot)
	}
}
