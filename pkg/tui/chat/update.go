package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// All key handling happens in handleKeyMsg
		return handleKeyMsg(m, msg)

	case errMsg:
		m.err = msg
		return m, nil

	case connectedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.updateViewportContent()
			return m, nil
		}
		m.conn = msg.client
		m.err = nil
		m.session.Attach(msg.client)
		m.updateViewportContent()
		return m, nil

	case frameMsg:
		m.session.HandleFrame(msg.data)
		m.updateViewportContent()
		return m, waitForEvent(m.events)

	case connClosedMsg:
		m.session.HandleDisconnect(msg.err)
		m.conn = nil
		m.err = msg.err
		m.updateViewportContent()
		return m, waitForEvent(m.events)

	case spinner.TickMsg:
		var spCmd tea.Cmd
		m.spinner, spCmd = m.spinner.Update(msg)
		if m.session.Pending() {
			m.updateViewportContent()
		}
		return m, spCmd

	default:
		// Update textarea for other messages (like blink cursor)
		var tiCmd tea.Cmd
		m.textarea, tiCmd = m.textarea.Update(msg)
		cmds = append(cmds, tiCmd)

		// Update viewport for other messages
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}
