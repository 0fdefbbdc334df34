package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/parley-sh/parley/pkg/markup"
	"github.com/parley-sh/parley/pkg/search"
)

func (m chatModel) renderTranscript() string {
	var rendered []string

	availableWidth := m.viewport.Width
	if availableWidth <= 0 {
		availableWidth = 80 // Default fallback
	}
	wrap := lipgloss.NewStyle().Width(availableWidth)

	for _, entry := range m.session.Transcript() {
		var block string
		switch {
		case entry.IsUser():
			block = m.styles.UserMessage.Render("> ") +
				markup.Styled(entry.Content, m.styles.UserMessage, m.styles.Emphasis)

		case entry.Reasoning:
			block = m.spinner.View() + " " + m.styles.Reasoning.Render(entry.ReasoningNote)

		default:
			block = markup.Styled(entry.Content, m.styles.AssistantMessage, m.styles.Emphasis)
			if entry.HasResults() {
				block += "\n\n" + m.renderResults(entry.Results)
			}
		}
		rendered = append(rendered, wrap.Render(block))
	}

	return strings.Join(rendered, "\n\n")
}

func (m chatModel) renderResults(rs search.ResultSet) string {
	var sections []string
	for _, category := range search.Shape(rs) {
		var cards []string
		cards = append(cards, m.styles.CategoryName.Render(strings.ToUpper(category.Name)))
		for _, item := range category.Items {
			cards = append(cards, m.renderCard(item, category.Action))
		}
		sections = append(sections, strings.Join(cards, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

func (m chatModel) renderCard(item search.Item, action string) string {
	var lines []string
	if item.Title != "" {
		lines = append(lines, m.styles.CardTitle.Render(item.Title))
	}
	if item.Body != "" {
		lines = append(lines, m.styles.CardBody.Render(item.Body))
	}
	if item.Date != "" {
		lines = append(lines, m.styles.CardMeta.Render(item.Date))
	}
	if item.Link != "" {
		lines = append(lines, m.styles.CardLink.Render(action+": "+item.Link))
	}
	return strings.Join(lines, "\n")
}

func (m *chatModel) updateViewportContent() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
