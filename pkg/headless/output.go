package headless

import (
	"fmt"
	"os"
	"strings"

	"github.com/parley-sh/parley/pkg/chat"
	"github.com/parley-sh/parley/pkg/markup"
	"github.com/parley-sh/parley/pkg/search"
	"github.com/parley-sh/parley/pkg/tui/theme"
)

// Output handles console output for headless mode
type Output struct {
	styles *theme.Styles
}

// NewOutput creates a new output handler
func NewOutput() *Output {
	return &Output{styles: theme.DefaultStyles()}
}

// Progress prints a reasoning update to stderr so stdout stays clean for
// the answer itself.
func (o *Output) Progress(note string) {
	if note == "" {
		return
	}
	fmt.Fprintln(os.Stderr, o.styles.Reasoning.Render(note))
}

// PrintTranscript writes the assistant's answer and any search results to
// stdout.
func (o *Output) PrintTranscript(entries []chat.Message) {
	for _, entry := range entries {
		if entry.IsUser() || entry.Reasoning || entry.IsEmpty() {
			continue
		}
		fmt.Println(markup.Styled(entry.Content, o.styles.AssistantMessage, o.styles.Emphasis))
		if entry.HasResults() {
			fmt.Println()
			o.printResults(entry.Results)
		}
	}
}

func (o *Output) printResults(rs search.ResultSet) {
	for _, category := range search.Shape(rs) {
		fmt.Println(o.styles.CategoryName.Render(strings.ToUpper(category.Name)))
		for _, item := range category.Items {
			if item.Title != "" {
				fmt.Println(o.styles.CardTitle.Render(item.Title))
			}
			if item.Body != "" {
				fmt.Println(o.styles.CardBody.Render(item.Body))
			}
			if item.Date != "" {
				fmt.Println(o.styles.CardMeta.Render(item.Date))
			}
			if item.Link != "" {
				fmt.Println(o.styles.CardLink.Render(category.Action + ": " + item.Link))
			}
			fmt.Println()
		}
	}
}
