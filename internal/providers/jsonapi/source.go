package jsonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"alpha-listings/internal/model"
	"alpha-listings/internal/providers/common"
)

const pageLimit = 4

// Source reads listings from a paginated JSON API of the shape
// {"data": {"current_page": 1, "last_page": 3, "data": [...]}}.
type Source struct {
	client   *http.Client
	base     string
	maxPages int
}

func NewSource(client *http.Client, base string, maxPages int) *Source {
	if maxPages <= 0 {
		maxPages = 1
	}
	return &Source{client: client, base: base, maxPages: maxPages}
}

func (s *Source) Source() string {
	return "json"
}

type response struct {
	Data *struct {
		CurrentPage int           `json:"current_page"`
		LastPage    int           `json:"last_page"`
		Data        []projectJSON `json:"data"`
	} `json:"data"`
}

// Field names vary between API versions; the first non-empty one wins.
type projectJSON struct {
	ID          any    `json:"id"`
	AltID       any    `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Budget      string `json:"budget"`
	MinBudget   any    `json:"min_budget"`
	MaxBudget   any    `json:"max_budget"`
	BudgetFrom  any    `json:"budget_from"`
	BudgetTo    any    `json:"budget_to"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
	Skills      []any  `json:"skills"`
	Proposals   any    `json:"proposals"`
	BidsCount   any    `json:"bids_count"`
	Posted      string `json:"posted"`
	PostedAgo   string `json:"posted_ago"`
}

func (s *Source) Load(ctx context.Context) ([]model.Item, error) {
	log.Printf("[json] page 1")
	firstPage, lastPage, err := s.fetchPage(ctx, 1)
	if err != nil {
		return nil, err
	}
	log.Printf("[json] page 1 found %d items (total pages: %d)", len(firstPage), lastPage)

	if lastPage > s.maxPages {
		lastPage = s.maxPages
	}
	if lastPage <= 1 {
		return firstPage, nil
	}

	pages := make([][]model.Item, lastPage+1)
	pages[1] = firstPage

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(pageLimit)

	var mu sync.Mutex
	for page := 2; page <= lastPage; page++ {
		current := page
		group.Go(func() error {
			items, _, err := s.fetchPage(gctx, current)
			if err != nil {
				return fmt.Errorf("page %d: %w", current, err)
			}
			log.Printf("[json] page %d found %d items", current, len(items))
			mu.Lock()
			pages[current] = items
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var items []model.Item
	for _, p := range pages {
		items = append(items, p...)
	}
	return items, nil
}

func (s *Source) fetchPage(ctx context.Context, page int) ([]model.Item, int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	u, err := url.Parse(s.base)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid api url: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	var payload response
	if err := decoder.Decode(&payload); err != nil {
		return nil, 0, fmt.Errorf("decode: %w", err)
	}
	if payload.Data == nil {
		return nil, 0, nil
	}

	items := make([]model.Item, 0, len(payload.Data.Data))
	for _, p := range payload.Data.Data {
		item, ok := toItem(p)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, payload.Data.LastPage, nil
}

func toItem(p projectJSON) (model.Item, bool) {
	id := int(pickInt(p.ID, p.AltID))
	if id <= 0 {
		return model.Item{}, false
	}

	budget := p.Budget
	amountMin, amountMax := pickInt(p.MinBudget, p.BudgetFrom), pickInt(p.MaxBudget, p.BudgetTo)
	if budget == "" {
		budget = common.FormatBudgetText(amountMin, amountMax)
	}

	item := model.NewItem(
		id,
		p.Title,
		p.Description,
		budget,
		p.Duration,
		model.Category(strings.ToLower(strings.TrimSpace(p.Category))),
		collectSkills(p.Skills),
		pickString(p.PostedAgo, p.Posted),
		int(pickInt(p.Proposals, p.BidsCount)),
	)
	if p.Budget == "" {
		item.BudgetRange = model.RangeFromBounds(amountMin, amountMax)
	}
	return item, true
}

func pickInt(values ...any) int64 {
	for _, v := range values {
		if n := common.ToInt64(v); n != 0 {
			return n
		}
	}
	return 0
}

func pickString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// collectSkills accepts both ["Go"] and [{"name": "Go"}] forms.
func collectSkills(raw []any) []string {
	if len(raw) == 0 {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, skill := range raw {
		var value string
		switch v := skill.(type) {
		case string:
			value = v
		case map[string]any:
			value = common.ToString(v["name"])
			if value == "" {
				value = common.ToString(v["title"])
			}
		}
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}
