package render

import (
	"fmt"
	"io"
	"strings"

	"alpha-listings/internal/model"
)

// Text draws the listing as plain lines, for terminal sessions.
type Text struct {
	w io.Writer
}

func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) Loading(placeholders int) {
	fmt.Fprintf(t.w, "loading %d projects...\n", placeholders)
}

func (t *Text) Replace(items []model.Item) {
	fmt.Fprintln(t.w, strings.Repeat("-", 40))
	t.Append(items)
}

func (t *Text) Append(items []model.Item) {
	for _, item := range items {
		fmt.Fprintf(t.w, "#%d %s [%s] %s\n", item.ID, item.Title, strings.ToUpper(string(item.Category)), item.Budget)
		fmt.Fprintf(t.w, "    %s | %s | %d proposals\n", item.Duration, item.PostedAgo, item.Proposals)
		if len(item.Tags) > 0 {
			fmt.Fprintf(t.w, "    %s\n", strings.Join(item.Tags, ", "))
		}
	}
}

func (t *Text) Empty() {
	fmt.Fprintln(t.w, strings.Repeat("-", 40))
	fmt.Fprintln(t.w, "No projects found. Try adjusting your search criteria or filters.")
}

func (t *Text) LoadMore(visible bool) {
	if visible {
		fmt.Fprintln(t.w, "(type \"more\" to load more)")
	}
}
