package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styled materializes the rendered segments as terminal text, applying the
// given styles per segment kind. Rows join with newlines, so the result
// drops straight into a lipgloss layout.
func Styled(text string, plain, emphasis lipgloss.Style) string {
	var b strings.Builder
	for i, line := range Render(text) {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, seg := range line {
			switch seg.Kind {
			case SegmentEmphasis:
				b.WriteString(emphasis.Render(seg.Text))
			default:
				b.WriteString(plain.Render(seg.Text))
			}
		}
	}
	return b.String()
}
