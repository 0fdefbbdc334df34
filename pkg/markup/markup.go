package markup

import (
	"regexp"
	"strings"
)

// SegmentKind distinguishes how a span of text should be rendered.
type SegmentKind int

const (
	SegmentPlain SegmentKind = iota
	SegmentEmphasis
)

// Segment is one inline span within a rendered line.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Line is the ordered sequence of segments making up one display row.
type Line []Segment

var emphasisRegex = regexp.MustCompile(`\*\*.*?\*\*`)

// Render splits text into display rows and inline segments. Each input line
// (split on newlines) yields exactly one row, empty lines included, so the
// vertical structure of the source survives. Within a row, paired
// double-asterisk spans become emphasis segments with the delimiters
// stripped; everything else passes through verbatim, unmatched delimiters
// included. Pure function: same input, same output, no state.
func Render(text string) []Line {
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, 0, len(rawLines))
	for _, raw := range rawLines {
		lines = append(lines, renderLine(raw))
	}
	return lines
}

func renderLine(raw string) Line {
	var line Line
	lastEnd := 0

	for _, match := range emphasisRegex.FindAllStringIndex(raw, -1) {
		if match[0] > lastEnd {
			line = append(line, segment(raw[lastEnd:match[0]]))
		}
		line = append(line, segment(raw[match[0]:match[1]]))
		lastEnd = match[1]
	}

	if lastEnd < len(raw) {
		line = append(line, segment(raw[lastEnd:]))
	}

	return line
}

// segment classifies one chunk. A chunk is emphasis only when it carries a
// delimiter pair on both ends and is long enough that the two pairs do not
// overlap ("**" alone stays plain).
func segment(chunk string) Segment {
	if len(chunk) >= 4 && strings.HasPrefix(chunk, "**") && strings.HasSuffix(chunk, "**") {
		return Segment{Kind: SegmentEmphasis, Text: chunk[2 : len(chunk)-2]}
	}
	return Segment{Kind: SegmentPlain, Text: chunk}
}
