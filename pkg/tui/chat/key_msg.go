package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-sh/parley/pkg/chat"
)

func handleKeyMsg(m chatModel, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape, tea.KeyCtrlC:
		if m.conn != nil {
			m.conn.Close()
		}
		return m, tea.Quit

	case tea.KeyCtrlS:
		m.searchEnabled = !m.searchEnabled
		return m, nil

	case tea.KeyCtrlR:
		if m.conn == nil {
			return m, m.dial
		}

	case tea.KeyEnter:
		if msg.Alt {
			// Alt+Enter adds a newline
			break
		}
		err := m.session.Submit(m.textarea.Value(), m.searchEnabled)
		switch err {
		case nil:
			m.textarea.Reset()
			m.textarea.SetHeight(1)
			m.updateViewportHeight()
			m.updateViewportContent()
		case chat.ErrEmptyMessage:
			// Nothing to send, nothing to show
		default:
			m.err = err
			m.updateViewportContent()
		}
		return m, nil
	}

	// Let the textarea handle the key
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)

	// Recalculate and update height after any key input
	newHeight := m.calculateTextAreaHeight()
	if m.textarea.Height() != newHeight {
		m.textarea.SetHeight(newHeight)
		m.updateViewportHeight()
	}

	return m, cmd
}
