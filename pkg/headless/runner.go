package headless

import (
	"fmt"
	"sync"
	"time"

	"github.com/parley-sh/parley/pkg/chat"
	"github.com/parley-sh/parley/pkg/logger"
)

const (
	// settleInterval is how long the runner waits after the last frame
	// before treating the answer as complete. The protocol has no explicit
	// end-of-turn marker.
	settleInterval = 2 * time.Second
	// overallTimeout bounds the whole turn.
	overallTimeout = 5 * time.Minute
)

// runner waits out a single request/answer exchange.
type runner struct {
	output *Output

	mu       sync.Mutex
	answered bool
	closed   bool

	changed chan struct{}
	done    chan error
}

func newRunner() *runner {
	return &runner{
		output:  NewOutput(),
		changed: make(chan struct{}, 1),
		done:    make(chan error, 1),
	}
}

// onChange is wired to the session; it nudges the settle timer and records
// whether a final answer has landed.
func (r *runner) onChange(entries []chat.Message) {
	last, ok := chat.LastEntry(entries)
	if !ok {
		return
	}

	if last.Reasoning {
		r.output.Progress(last.ReasoningNote)
	} else if last.IsAssistant() {
		r.mu.Lock()
		r.answered = true
		r.mu.Unlock()
	}

	select {
	case r.changed <- struct{}{}:
	default:
	}
}

func (r *runner) isAnswered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.answered
}

func (r *runner) connClosed(err error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()
	r.done <- err
}

// wait blocks until the answer has settled, the connection drops, or the
// overall timeout expires.
func (r *runner) wait(session *chat.Session) error {
	deadline := time.NewTimer(overallTimeout)
	defer deadline.Stop()

	settle := time.NewTimer(overallTimeout)
	settle.Stop()
	defer settle.Stop()

	if r.isAnswered() {
		settle.Reset(settleInterval)
	}

	for {
		select {
		case <-r.changed:
			// Arm the settle timer once the final answer has arrived;
			// reasoning frames alone never end the turn.
			if r.isAnswered() {
				settle.Reset(settleInterval)
			}

		case <-settle.C:
			logger.Debug("Answer settled, finishing headless run")
			return nil

		case err := <-r.done:
			if !r.isAnswered() {
				if err != nil {
					return fmt.Errorf("connection lost before the answer arrived: %w", err)
				}
				return fmt.Errorf("connection closed before the answer arrived")
			}
			return nil

		case <-deadline.C:
			return fmt.Errorf("timed out waiting for an answer after %v", overallTimeout)
		}
	}
}
