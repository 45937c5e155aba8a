package listing

import (
	"strconv"
	"strings"

	"alpha-listings/internal/model"
)

const (
	DefaultPageSize = 6
	MaxPageSize     = 50
)

// CategoryAll disables the category filter.
const CategoryAll model.Category = "all"

type BudgetBucket string

const (
	BudgetAll      BudgetBucket = "all"
	BudgetUpTo5k   BudgetBucket = "0-5000"
	Budget5kTo15k  BudgetBucket = "5000-15000"
	Budget15kTo50k BudgetBucket = "15000-50000"
	BudgetAbove50k BudgetBucket = "50000+"
)

var budgetBuckets = []BudgetBucket{BudgetAll, BudgetUpTo5k, Budget5kTo15k, Budget15kTo50k, BudgetAbove50k}

// Contains reports whether r satisfies the bucket. The buckets do not cover
// every range: a range straddling a boundary (4000-6000) matches none of them.
func (b BudgetBucket) Contains(r model.BudgetRange) bool {
	switch b {
	case BudgetUpTo5k:
		return r.Max <= 5000
	case Budget5kTo15k:
		return r.Min >= 5000 && r.Max <= 15000
	case Budget15kTo50k:
		return r.Min >= 15000 && r.Max <= 50000
	case BudgetAbove50k:
		return r.Min >= 50000
	default:
		return true
	}
}

type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortBudgetHigh SortKey = "budget-high"
	SortBudgetLow  SortKey = "budget-low"
	SortDeadline   SortKey = "deadline"
)

var sortKeys = []SortKey{SortNewest, SortBudgetHigh, SortBudgetLow, SortDeadline}

// State is everything the engine needs to derive a view. It is a value type;
// the With* helpers return a copy with the page index reset.
type State struct {
	Query     string
	Category  model.Category
	Budget    BudgetBucket
	Sort      SortKey
	PageSize  int
	PageIndex int
}

func DefaultState() State {
	return State{
		Category: CategoryAll,
		Budget:   BudgetAll,
		Sort:     SortNewest,
		PageSize: DefaultPageSize,
	}
}

func (s State) WithQuery(q string) State {
	s.Query = q
	s.PageIndex = 0
	return s
}

func (s State) WithCategory(c model.Category) State {
	s.Category = c
	s.PageIndex = 0
	return s
}

func (s State) WithBudget(b BudgetBucket) State {
	s.Budget = b
	s.PageIndex = 0
	return s
}

func (s State) WithSort(k SortKey) State {
	s.Sort = k
	s.PageIndex = 0
	return s
}

func (s State) pageSize() int {
	if s.PageSize <= 0 {
		return DefaultPageSize
	}
	return s.PageSize
}

// ParseState builds a State from untrusted input. Empty values take the
// defaults; anything else outside the known sets is a *FilterError.
func ParseState(query, category, budget, sort, page, pageSize string) (State, error) {
	s := DefaultState()
	s.Query = query

	if c := strings.TrimSpace(category); c != "" && !strings.EqualFold(c, string(CategoryAll)) {
		parsed, ok := model.ParseCategory(c)
		if !ok {
			return State{}, &FilterError{Field: "category", Value: category}
		}
		s.Category = parsed
	}

	if b := strings.TrimSpace(budget); b != "" {
		parsed, ok := parseBudgetBucket(b)
		if !ok {
			return State{}, &FilterError{Field: "budget", Value: budget}
		}
		s.Budget = parsed
	}

	if k := strings.TrimSpace(sort); k != "" {
		parsed, ok := parseSortKey(k)
		if !ok {
			return State{}, &FilterError{Field: "sort", Value: sort}
		}
		s.Sort = parsed
	}

	if p := strings.TrimSpace(page); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return State{}, &FilterError{Field: "page", Value: page, Err: err}
		}
		s.PageIndex = n
	}

	if p := strings.TrimSpace(pageSize); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return State{}, &FilterError{Field: "page_size", Value: pageSize, Err: err}
		}
		s.PageSize = ClampPageSize(n)
	}

	return s, nil
}

// ClampPageSize applies the default and upper limit for page sizes.
func ClampPageSize(n int) int {
	if n <= 0 {
		return DefaultPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

func parseBudgetBucket(value string) (BudgetBucket, bool) {
	for _, b := range budgetBuckets {
		if string(b) == value {
			return b, true
		}
	}
	return "", false
}

func parseSortKey(value string) (SortKey, bool) {
	for _, k := range sortKeys {
		if string(k) == value {
			return k, true
		}
	}
	return "", false
}
