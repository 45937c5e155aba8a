package htmlcards

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"alpha-listings/internal/model"
	"alpha-listings/internal/providers/common"
)

const (
	userAgent = "alpha-listings/1.0"
	pageLimit = 4
)

// Source reads project cards from a paginated HTML listing, the same markup
// the projects page renders.
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
	return "html"
}

func (s *Source) Load(ctx context.Context) ([]model.Item, error) {
	log.Printf("[html] page 1")
	firstPage, totalPages, err := s.fetchPage(ctx, 1)
	if err != nil {
		log.Printf("[html] failed on page 1: %v", err)
		return nil, err
	}
	log.Printf("[html] page 1 found %d items (total pages: %d)", len(firstPage), totalPages)

	if totalPages > s.maxPages {
		totalPages = s.maxPages
	}
	if totalPages <= 1 {
		return firstPage, nil
	}
	return s.fetchRemainingPages(ctx, totalPages, firstPage), nil
}

// fetchRemainingPages keeps page order in the result even though pages
// arrive concurrently. A failed page is logged and left out.
func (s *Source) fetchRemainingPages(ctx context.Context, totalPages int, seed []model.Item) []model.Item {
	pages := make([][]model.Item, totalPages+1)
	pages[1] = seed

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(pageLimit)

	var mu sync.Mutex
	for page := 2; page <= totalPages; page++ {
		page := page
		group.Go(func() error {
			items, _, err := s.fetchPage(gctx, page)
			if err != nil {
				log.Printf("[html] failed on page %d: %v", page, err)
				return nil
			}
			log.Printf("[html] page %d found %d items", page, len(items))
			mu.Lock()
			pages[page] = items
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	var items []model.Item
	for _, p := range pages {
		items = append(items, p...)
	}
	return items
}

func (s *Source) fetchPage(ctx context.Context, page int) ([]model.Item, int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	target, err := pageURL(s.base, page)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("parse html: %w", err)
	}

	items, totalPages := ExtractCards(doc)
	return items, totalPages, nil
}

func pageURL(base string, page int) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid listing url: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ExtractCards returns every parseable card and the page count advertised by
// the grid's data-total-pages attribute (1 when absent).
func ExtractCards(doc *goquery.Document) ([]model.Item, int) {
	totalPages := 1
	if raw, ok := doc.Find("[data-total-pages]").First().Attr("data-total-pages"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
			totalPages = n
		}
	}

	var items []model.Item
	doc.Find(".project-card").Each(func(_ int, card *goquery.Selection) {
		if card.HasClass("loading") {
			return
		}
		item, ok := parseCard(card)
		if !ok {
			return
		}
		items = append(items, item)
	})
	return items, totalPages
}

func parseCard(card *goquery.Selection) (model.Item, bool) {
	id := cardID(card)
	if id <= 0 {
		return model.Item{}, false
	}

	var tags []string
	card.Find(".skill-tag").Each(func(_ int, tag *goquery.Selection) {
		if text := common.CleanText(tag.Text()); text != "" {
			tags = append(tags, text)
		}
	})

	return model.NewItem(
		id,
		common.CleanText(card.Find(".project-title").First().Text()),
		common.CleanText(card.Find(".project-description").First().Text()),
		common.CleanText(card.Find(".project-budget").First().Text()),
		common.CleanText(card.Find(".project-duration").First().Text()),
		model.Category(strings.ToLower(common.CleanText(card.Find(".project-category").First().Text()))),
		tags,
		common.CleanText(card.Find(".project-posted").First().Text()),
		common.LeadingInt(card.Find(".project-proposals").First().Text()),
	), true
}

func cardID(card *goquery.Selection) int {
	if raw, ok := card.Attr("data-id"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			return n
		}
	}
	if onclick, ok := card.Find(".project-cta").First().Attr("onclick"); ok {
		return common.LeadingInt(onclick)
	}
	return 0
}
