package listing

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"alpha-listings/internal/model"
)

// Apply filters and orders items for state. The input slice is never
// modified; ties keep their input order. Paging fields of state are ignored.
func Apply(items []model.Item, state State) []model.Item {
	query := strings.ToLower(strings.TrimSpace(state.Query))

	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		if state.Category != "" && state.Category != CategoryAll && item.Category != state.Category {
			continue
		}
		if !state.Budget.Contains(item.BudgetRange) {
			continue
		}
		out = append(out, item)
	}

	sortItems(out, state.Sort)
	return out
}

func matchesQuery(item model.Item, query string) bool {
	if strings.Contains(strings.ToLower(item.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), query) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sortItems(items []model.Item, key SortKey) {
	switch key {
	case SortBudgetHigh:
		slices.SortStableFunc(items, func(a, b model.Item) int {
			return cmp.Compare(b.BudgetRange.Max, a.BudgetRange.Max)
		})
	case SortBudgetLow:
		slices.SortStableFunc(items, func(a, b model.Item) int {
			return cmp.Compare(a.BudgetRange.Min, b.BudgetRange.Min)
		})
	case SortDeadline:
		// Raw duration text, so "10-12 months" sorts before "2-3 months".
		col := collate.New(language.English)
		slices.SortStableFunc(items, func(a, b model.Item) int {
			return col.CompareString(a.Duration, b.Duration)
		})
	default:
		keyed := make([]postedKey, len(items))
		for i, item := range items {
			keyed[i] = postedKey{days: item.PostedDays(), item: item}
		}
		slices.SortStableFunc(keyed, func(a, b postedKey) int {
			return cmp.Compare(a.days, b.days)
		})
		for i := range keyed {
			items[i] = keyed[i].item
		}
	}
}

type postedKey struct {
	days int
	item model.Item
}

// Page returns the pageIndex-th slice of seq, clipped to its bounds.
func Page(seq []model.Item, pageIndex, pageSize int) []model.Item {
	if pageIndex < 0 || pageSize <= 0 || pageIndex >= pageCount(len(seq), pageSize) {
		return nil
	}
	start := pageIndex * pageSize
	end := min(start+pageSize, len(seq))
	return seq[start:end:end]
}

// pageCount is ceil(total/size) without the overflow of total+size-1.
func pageCount(total, size int) int {
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

// HasMore reports whether a "load more" would reveal further items.
func HasMore(displayed, total int) bool {
	return displayed < total
}

// View is what a renderer needs for one state. Items is the PageIndex-th
// page; Shown is every item up to and including it, which is what a page
// that appends on "load more" has on screen.
type View struct {
	State     State
	Items     []model.Item
	Shown     []model.Item
	Total     int
	Displayed int
	HasMore   bool
	Empty     bool
}

// Build derives the view for state. Displayed counts every page up to and
// including PageIndex, as if "load more" had been pressed PageIndex times.
func Build(items []model.Item, state State) View {
	ordered := Apply(items, state)
	size := state.pageSize()
	displayed := len(ordered)
	if state.PageIndex < pageCount(len(ordered), size) {
		displayed = min((state.PageIndex+1)*size, len(ordered))
	}

	return View{
		State:     state,
		Items:     Page(ordered, state.PageIndex, size),
		Shown:     ordered[:displayed:displayed],
		Total:     len(ordered),
		Displayed: displayed,
		HasMore:   HasMore(displayed, len(ordered)),
		Empty:     len(ordered) == 0,
	}
}
