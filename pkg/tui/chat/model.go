package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/parley-sh/parley/pkg/chat"
	"github.com/parley-sh/parley/pkg/config"
	"github.com/parley-sh/parley/pkg/tui/theme"
	"github.com/parley-sh/parley/pkg/ws"
)

type chatModel struct {
	viewport      viewport.Model
	textarea      textarea.Model
	spinner       spinner.Model
	session       *chat.Session
	conn          *ws.Client
	cfg           config.ServerConfig
	events        chan tea.Msg
	searchEnabled bool
	err           error
	width         int
	height        int
	styles        *theme.Styles
}

// NewChatModel builds the TUI model around an existing session. The
// connection is dialed from Init so startup failures surface in the UI.
func NewChatModel(session *chat.Session, cfg config.ServerConfig, searchEnabled bool) chatModel {
	ta := textarea.New()
	ta.Focus()
	ta.Placeholder = "Type a message..."
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline.SetEnabled(true)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorCyan)

	vp := viewport.New(80, 20)

	return chatModel{
		textarea:      ta,
		viewport:      vp,
		spinner:       sp,
		session:       session,
		cfg:           cfg,
		events:        make(chan tea.Msg, 32),
		searchEnabled: searchEnabled,
		styles:        theme.DefaultStyles(),
	}
}

// dial connects to the server. Frames and close notifications are funneled
// into the event channel so all transcript mutations happen on the update
// loop; the caller attaches the returned client to the session.
func (m chatModel) dial() tea.Msg {
	events := m.events
	client, err := ws.Dial(context.Background(), ws.Options{
		URL:              m.cfg.URL,
		HandshakeTimeout: m.cfg.HandshakeTimeout,
		PingInterval:     m.cfg.PingInterval,
		OnFrame: func(data []byte) {
			events <- frameMsg{data: data}
		},
		OnClose: func(err error) {
			events <- connClosedMsg{err: err}
		},
	})
	return connectedMsg{client: client, err: err}
}
