// Command browse is a terminal session over the projects listing.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"alpha-listings/internal/app"
	"alpha-listings/internal/config"
	"alpha-listings/internal/listing"
	"alpha-listings/internal/model"
	"alpha-listings/internal/notify"
	"alpha-listings/internal/render"
)

const help = `commands:
  search <text>       filter by title, description or skill
  category <name>     all, defi, nft, dao, gaming, infrastructure
  budget <bucket>     all, 0-5000, 5000-15000, 15000-50000, 50000+
  sort <key>          newest, budget-high, budget-low, deadline
  more                load the next page
  apply <id>          apply to a project
  quit`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	application, err := app.NewBuilder(&cfg, app.WithNotifier(notify.Log{})).Build(ctx)
	cancel()
	if err != nil {
		log.Fatalf("app build error: %v", err)
	}

	out := &syncWriter{w: os.Stdout}
	session := newSession(application.Catalog.Items(), application.Notifier, out, cfg)
	session.controller.Refresh()

	fmt.Fprintln(out, help)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if !session.handle(scanner.Text()) {
			return
		}
	}
}

type session struct {
	controller *listing.Controller
	items      []model.Item
	notifier   notify.Notifier
	out        io.Writer
}

func newSession(items []model.Item, notifier notify.Notifier, out io.Writer, cfg config.Config) *session {
	state := listing.DefaultState()
	state.PageSize = listing.ClampPageSize(cfg.PageSize)
	return &session{
		controller: listing.NewController(items, render.NewText(out),
			listing.WithState(state),
			listing.WithDelays(cfg.RenderDelay, cfg.LoadMoreDelay),
		),
		items:    items,
		notifier: notifier,
		out:      out,
	}
}

// handle runs one command line and reports whether the session goes on.
func (s *session) handle(line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
	case "quit", "exit":
		return false
	case "search":
		s.controller.Search(arg)
	case "category":
		if strings.EqualFold(arg, string(listing.CategoryAll)) {
			s.controller.SetCategory(listing.CategoryAll)
			break
		}
		c, ok := model.ParseCategory(arg)
		if !ok {
			fmt.Fprintf(s.out, "unknown category %q\n", arg)
			break
		}
		s.controller.SetCategory(c)
	case "budget":
		state, err := listing.ParseState("", "", arg, "", "", "")
		if err != nil || arg == "" {
			fmt.Fprintf(s.out, "unknown budget %q\n", arg)
			break
		}
		s.controller.SetBudget(state.Budget)
	case "sort":
		state, err := listing.ParseState("", "", "", arg, "", "")
		if err != nil || arg == "" {
			fmt.Fprintf(s.out, "unknown sort %q\n", arg)
			break
		}
		s.controller.SetSort(state.Sort)
	case "more":
		if !s.controller.LoadMore() {
			fmt.Fprintln(s.out, "nothing more to load")
		}
	case "apply":
		s.apply(arg)
	default:
		fmt.Fprintln(s.out, help)
	}
	return true
}

func (s *session) apply(arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(s.out, "invalid project id %q\n", arg)
		return
	}
	for _, item := range s.items {
		if item.ID == id {
			s.notifier.Notify(notify.Notification{Level: notify.LevelInfo, Message: "Applying to: " + item.Title})
			return
		}
	}
	fmt.Fprintf(s.out, "project %d not found\n", id)
}

// syncWriter serializes writes from the prompt loop and render timers.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
