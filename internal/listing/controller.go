package listing

import (
	"sync"
	"time"

	"alpha-listings/internal/model"
)

const (
	DefaultRenderDelay   = 300 * time.Millisecond
	DefaultLoadMoreDelay = 300 * time.Millisecond
)

// Renderer draws the listing. The controller serializes all calls.
type Renderer interface {
	Loading(placeholders int)
	Replace(items []model.Item)
	Append(items []model.Item)
	Empty()
	LoadMore(visible bool)
}

// ScheduleFunc runs fn after d. The default wraps time.AfterFunc.
type ScheduleFunc func(d time.Duration, fn func())

type ControllerOption func(*Controller)

func WithDelays(render, loadMore time.Duration) ControllerOption {
	return func(c *Controller) {
		c.renderDelay = render
		c.loadMoreDelay = loadMore
	}
}

func WithSchedule(schedule ScheduleFunc) ControllerOption {
	return func(c *Controller) {
		c.schedule = schedule
	}
}

func WithState(state State) ControllerOption {
	return func(c *Controller) {
		c.state = state
	}
}

// Controller is one interactive browsing session. Every filter change shows
// a loading state and re-renders after a delay; a newer change supersedes a
// pending render. "Load more" appends the next page after its own delay and
// is ignored while one is already pending.
type Controller struct {
	items    []model.Item
	renderer Renderer
	seq      Sequencer

	renderDelay   time.Duration
	loadMoreDelay time.Duration
	schedule      ScheduleFunc

	mu            sync.Mutex
	state         State
	ordered       []model.Item
	displayed     int
	renderPending bool
	loadPending   bool
}

func NewController(items []model.Item, renderer Renderer, options ...ControllerOption) *Controller {
	c := &Controller{
		items:         items,
		renderer:      renderer,
		renderDelay:   DefaultRenderDelay,
		loadMoreDelay: DefaultLoadMoreDelay,
		schedule:      func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		state:         DefaultState(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Displayed is the number of items currently on screen.
func (c *Controller) Displayed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayed
}

func (c *Controller) Refresh() {
	c.update(func(s State) State { return s })
}

func (c *Controller) Search(query string) {
	c.update(func(s State) State { return s.WithQuery(query) })
}

func (c *Controller) SetCategory(category model.Category) {
	c.update(func(s State) State { return s.WithCategory(category) })
}

func (c *Controller) SetBudget(bucket BudgetBucket) {
	c.update(func(s State) State { return s.WithBudget(bucket) })
}

func (c *Controller) SetSort(key SortKey) {
	c.update(func(s State) State { return s.WithSort(key) })
}

func (c *Controller) update(change func(State) State) {
	c.mu.Lock()
	c.state = change(c.state)
	c.state.PageIndex = 0
	c.renderPending = true
	c.loadPending = false
	state := c.state
	token := c.seq.Next()
	c.renderer.Loading(state.pageSize())
	c.mu.Unlock()

	c.schedule(c.renderDelay, func() { c.render(token, state) })
}

func (c *Controller) render(token Token, state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.seq.IsCurrent(token) {
		return
	}
	c.renderPending = false

	c.ordered = Apply(c.items, state)
	first := Page(c.ordered, 0, state.pageSize())
	c.displayed = len(first)

	if len(first) == 0 {
		c.renderer.Empty()
	} else {
		c.renderer.Replace(first)
	}
	c.renderer.LoadMore(HasMore(c.displayed, len(c.ordered)))
}

// LoadMore schedules the next page. It reports false when nothing was
// scheduled: no more items, or a render or load is already pending.
func (c *Controller) LoadMore() bool {
	c.mu.Lock()
	if c.renderPending || c.loadPending || !HasMore(c.displayed, len(c.ordered)) {
		c.mu.Unlock()
		return false
	}
	c.loadPending = true
	token := c.seq.Next()
	c.mu.Unlock()

	c.schedule(c.loadMoreDelay, func() { c.appendPage(token) })
	return true
}

func (c *Controller) appendPage(token Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.seq.IsCurrent(token) {
		return
	}
	c.loadPending = false

	next := c.state.PageIndex + 1
	items := Page(c.ordered, next, c.state.pageSize())
	c.state.PageIndex = next
	c.displayed += len(items)

	c.renderer.Append(items)
	c.renderer.LoadMore(HasMore(c.displayed, len(c.ordered)))
}
