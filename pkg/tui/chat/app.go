package chat

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-sh/parley/pkg/chat"
	"github.com/parley-sh/parley/pkg/config"
)

// StartApp runs the interactive chat UI until the user quits.
func StartApp(cfg *config.Config) error {
	session := chat.NewSession(cfg.User, cfg.Session)
	model := NewChatModel(session, cfg.Server, cfg.Search)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run chat ui: %w", err)
	}
	return nil
}
