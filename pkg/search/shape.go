package search

import "sort"

// Category is a display-ready grouping of search results.
type Category struct {
	Name   string
	Action string
	Items  []Item
}

// Item is a display-ready search result with all optional fields resolved.
type Item struct {
	Title string
	Body  string
	Date  string
	Image string
	Link  string
}

const (
	actionView = "View"
	actionRead = "Read more"
)

// categoryRank orders the categories the service produces ahead of any
// unknown ones, which sort alphabetically after.
var categoryRank = map[string]int{
	"web":    0,
	"news":   1,
	"videos": 2,
}

// Shape turns a raw ResultSet into displayable categories. Null items are
// dropped, categories left empty after that are omitted, and per-item
// fields are resolved via the priority chains on Result.
func Shape(rs ResultSet) []Category {
	var categories []Category
	for name, results := range rs {
		var items []Item
		for _, r := range results {
			if r == nil {
				continue
			}
			items = append(items, Item{
				Title: r.Title,
				Body:  r.Body,
				Date:  r.ResolveDate(),
				Image: r.ResolveImage(),
				Link:  r.ResolveLink(),
			})
		}
		if len(items) == 0 {
			continue
		}
		categories = append(categories, Category{
			Name:   name,
			Action: actionLabel(name),
			Items:  items,
		})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		ri, iKnown := categoryRank[categories[i].Name]
		rj, jKnown := categoryRank[categories[j].Name]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return categories[i].Name < categories[j].Name
		}
	})

	return categories
}

func actionLabel(category string) string {
	if category == "videos" {
		return actionView
	}
	return actionRead
}
