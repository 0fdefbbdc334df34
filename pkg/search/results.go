package search

import (
	"strings"
	"time"
)

// ResultSet is the search payload attached to an assistant event: category
// name ("web", "news", "videos") to an ordered list of results. Items may be
// null on the wire; they are dropped during shaping.
type ResultSet map[string][]*Result

// Result is one search hit. Every field is optional; the service populates
// different subsets per category.
type Result struct {
	Image       string   `json:"image,omitempty"`
	Thumbnails  []string `json:"thumbnails,omitempty"`
	Title       string   `json:"title,omitempty"`
	Date        string   `json:"date,omitempty"`
	PublishTime string   `json:"publish_time,omitempty"`
	Body        string   `json:"body,omitempty"`
	Source      string   `json:"source,omitempty"`
	Href        string   `json:"href,omitempty"`
	URL         string   `json:"url,omitempty"`
	Link        string   `json:"link,omitempty"`
}

const displayDateLayout = "2 Jan 2006"

// ResolveLink picks the result's destination: href, then url, then link.
func (r *Result) ResolveLink() string {
	if r.Href != "" {
		return r.Href
	}
	if r.URL != "" {
		return r.URL
	}
	return r.Link
}

// ResolveImage picks the display image, falling back to the first thumbnail.
func (r *Result) ResolveImage() string {
	if r.Image != "" {
		return r.Image
	}
	if len(r.Thumbnails) > 0 {
		return r.Thumbnails[0]
	}
	return ""
}

// ResolveDate formats the result's timestamp as e.g. "5 Mar 2024",
// preferring date over publish_time. Returns "" when neither parses.
func (r *Result) ResolveDate() string {
	raw := r.Date
	if raw == "" {
		raw = r.PublishTime
	}
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return ""
	}
	return t.Format(displayDateLayout)
}

// IsEmpty reports whether the set has no displayable category.
func (rs ResultSet) IsEmpty() bool {
	for _, items := range rs {
		for _, item := range items {
			if item != nil {
				return false
			}
		}
	}
	return true
}

func (rs ResultSet) String() string {
	var names []string
	for name := range rs {
		names = append(names, name)
	}
	return strings.Join(names, ",")
}
