package render

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"

	"alpha-listings/internal/listing"
	"alpha-listings/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("projects.html").Funcs(template.FuncMap{
		"upper": func(c model.Category) string { return strings.ToUpper(string(c)) },
	}).ParseFS(templateFS, "templates/*.html"),
)

// PageData feeds the projects page template.
type PageData struct {
	View         listing.View
	Categories   []model.Category
	Buckets      []listing.BudgetBucket
	SortKeys     []listing.SortKey
	LoadMoreHref string
}

// HTML renders full projects pages.
type HTML struct{}

func NewHTML() *HTML {
	return &HTML{}
}

func (h *HTML) Page(w io.Writer, view listing.View) error {
	data := PageData{
		View:       view,
		Categories: model.Categories,
		Buckets:    []listing.BudgetBucket{listing.BudgetAll, listing.BudgetUpTo5k, listing.Budget5kTo15k, listing.Budget15kTo50k, listing.BudgetAbove50k},
		SortKeys:   []listing.SortKey{listing.SortNewest, listing.SortBudgetHigh, listing.SortBudgetLow, listing.SortDeadline},
	}
	if view.HasMore {
		data.LoadMoreHref = "?" + stateQuery(view.State, view.State.PageIndex+1).Encode()
	}
	return pageTemplate.ExecuteTemplate(w, "projects.html", data)
}

// Skeleton renders the loading placeholders shown while a page is pending.
func (h *HTML) Skeleton(w io.Writer, count int) error {
	return pageTemplate.ExecuteTemplate(w, "skeleton", make([]int, count))
}

func stateQuery(s listing.State, page int) url.Values {
	q := url.Values{}
	if s.Query != "" {
		q.Set("q", s.Query)
	}
	if s.Category != "" && s.Category != listing.CategoryAll {
		q.Set("category", string(s.Category))
	}
	if s.Budget != "" && s.Budget != listing.BudgetAll {
		q.Set("budget", string(s.Budget))
	}
	if s.Sort != "" && s.Sort != listing.SortNewest {
		q.Set("sort", string(s.Sort))
	}
	if s.PageSize != 0 && s.PageSize != listing.DefaultPageSize {
		q.Set("page_size", strconv.Itoa(s.PageSize))
	}
	q.Set("page", strconv.Itoa(page))
	return q
}
