package digest

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"

	"alpha-listings/internal/listing"
	"alpha-listings/internal/model"
	"alpha-listings/internal/notify"
)

type Calendar string

const (
	CalendarGregorian Calendar = "gregorian"
	CalendarPersian   Calendar = "persian"
)

// ItemSource supplies the current catalog snapshot.
type ItemSource interface {
	Items() []model.Item
}

// Service sends a summary of the newest listings.
type Service struct {
	items    ItemSource
	notifier notify.Notifier
	size     int
	calendar Calendar
	now      func() time.Time

	mu      sync.Mutex
	running bool
}

func NewService(items ItemSource, notifier notify.Notifier, size int, calendar Calendar) *Service {
	if size <= 0 {
		size = listing.DefaultPageSize
	}
	return &Service{
		items:    items,
		notifier: notifier,
		size:     size,
		calendar: calendar,
		now:      time.Now,
	}
}

// Run sends one digest. A run that starts while another is in progress is
// skipped.
func (s *Service) Run(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.Println("digest already running; skipping")
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	if err := ctx.Err(); err != nil {
		log.Printf("digest canceled: %v", err)
		return
	}

	message, count := s.Build()
	s.notifier.Notify(notify.Notification{Level: notify.LevelInfo, Message: message})
	log.Printf("digest sent with %d projects", count)
}

// Build renders the digest text and reports how many listings it names.
func (s *Service) Build() (string, int) {
	state := listing.DefaultState()
	state.PageSize = s.size
	view := listing.Build(s.items.Items(), state)

	var b strings.Builder
	fmt.Fprintf(&b, "Newest projects (%s)\n", s.formatTime(s.now()))
	if view.Empty {
		b.WriteString("No open projects right now.")
		return b.String(), 0
	}
	for _, item := range view.Items {
		fmt.Fprintf(&b, "\n• %s [%s]\n  %s · %s · %s\n", item.Title, strings.ToUpper(string(item.Category)), item.Budget, item.Duration, item.PostedAgo)
		if len(item.Tags) > 0 {
			fmt.Fprintf(&b, "  %s\n", strings.Join(item.Tags, ", "))
		}
	}
	if view.HasMore {
		fmt.Fprintf(&b, "\n…and %d more", view.Total-view.Displayed)
	}
	return strings.TrimRight(b.String(), "\n"), len(view.Items)
}

func (s *Service) formatTime(t time.Time) string {
	if s.calendar == CalendarPersian {
		return ptime.New(t).Format("yyyy/MM/dd HH:mm")
	}
	return t.Format("2006-01-02 15:04")
}
