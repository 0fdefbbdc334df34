package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-sh/parley/pkg/ws"
)

// frameMsg carries one raw frame from the connection into the update loop.
type frameMsg struct {
	data []byte
}

// connClosedMsg signals the connection's read loop has exited.
type connClosedMsg struct {
	err error
}

// connectedMsg delivers the result of a dial (or redial).
type connectedMsg struct {
	client *ws.Client
	err    error
}

type errMsg error

// waitForEvent blocks on the event channel and hands the next message to
// the update loop. Re-issued after every delivery.
func waitForEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}
