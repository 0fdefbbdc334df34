package chat

import (
	"fmt"
	"strings"
)

func (m chatModel) View() string {
	return fmt.Sprintf(
		"%s\n%s\n%s",
		m.viewport.View(),
		m.statusLine(),
		m.textarea.View(),
	)
}

func (m chatModel) statusLine() string {
	var parts []string

	if m.session.Connected() {
		parts = append(parts, m.styles.StatusText.Render("connected"))
	} else {
		parts = append(parts, m.styles.ErrorMessage.Render("disconnected (ctrl+r to reconnect)"))
	}

	if m.searchEnabled {
		parts = append(parts, m.styles.SearchOn.Render("search: on"))
	} else {
		parts = append(parts, m.styles.SearchOff.Render("search: off"))
	}

	if m.session.Pending() {
		parts = append(parts, m.spinner.View())
	}

	if m.err != nil {
		parts = append(parts, m.styles.ErrorMessage.Render(m.err.Error()))
	}

	line := strings.Join(parts, m.styles.StatusText.Render(" | "))
	if m.width > 0 {
		return m.styles.StatusBar.Width(m.width).Render(line)
	}
	return m.styles.StatusBar.Render(line)
}
