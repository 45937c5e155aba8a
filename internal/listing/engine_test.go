package listing

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpha-listings/internal/model"
	"alpha-listings/internal/providers/static"
)

func ids(items []model.Item) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestApplyDefaultOrdersNewestFirst(t *testing.T) {
	got := Apply(static.SampleItems(), DefaultState())
	assert.Equal(t, []int{2, 1, 8, 3, 7, 9, 4, 5, 6}, ids(got))
}

func TestApplyQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "tag match any case", query: "SOLIDITY", want: []int{2, 1, 3, 7, 9, 4, 5, 6}},
		{name: "title and description", query: "nft", want: []int{2, 7, 4}},
		{name: "tag substring", query: "react", want: []int{2, 1, 8, 7, 6}},
		{name: "whitespace only keeps all", query: "   ", want: []int{2, 1, 8, 3, 7, 9, 4, 5, 6}},
		{name: "no match", query: "cobol", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(static.SampleItems(), DefaultState().WithQuery(tt.query))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyEveryResultMatchesQuery(t *testing.T) {
	items := static.SampleItems()
	for _, q := range []string{"a", "Go", "chain", "dex", "unity", "platform"} {
		lower := strings.ToLower(q)
		for _, item := range Apply(items, DefaultState().WithQuery(q)) {
			matched := strings.Contains(strings.ToLower(item.Title), lower) ||
				strings.Contains(strings.ToLower(item.Description), lower)
			for _, tag := range item.Tags {
				matched = matched || strings.Contains(strings.ToLower(tag), lower)
			}
			assert.Truef(t, matched, "item %d does not match %q", item.ID, q)
		}
	}
}

func TestApplySolidityExcludesOnlyWallet(t *testing.T) {
	got := Apply(static.SampleItems(), DefaultState().WithQuery("solidity"))
	require.Len(t, got, 8)
	assert.NotContains(t, ids(got), 8)
}

func TestApplyCategoryAllIsSuperset(t *testing.T) {
	items := static.SampleItems()
	all := ids(Apply(items, DefaultState()))
	for _, c := range model.Categories {
		for _, id := range ids(Apply(items, DefaultState().WithCategory(c))) {
			assert.Contains(t, all, id)
		}
	}

	defi := Apply(items, DefaultState().WithCategory(model.CategoryDeFi))
	assert.Equal(t, []int{1, 6}, ids(defi))
}

func TestApplyBudgetBuckets(t *testing.T) {
	tests := []struct {
		bucket BudgetBucket
		want   []int
	}{
		{BudgetAll, []int{2, 1, 8, 3, 7, 9, 4, 5, 6}},
		{BudgetUpTo5k, []int{}},
		{Budget5kTo15k, []int{}},
		{Budget15kTo50k, []int{2, 1, 8, 3, 9, 5}},
		{BudgetAbove50k, []int{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			got := Apply(static.SampleItems(), DefaultState().WithBudget(tt.bucket))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestBudgetBucketStraddlingRangeMatchesNothing(t *testing.T) {
	r := model.BudgetRange{Min: 4000, Max: 6000}
	for _, b := range []BudgetBucket{BudgetUpTo5k, Budget5kTo15k, Budget15kTo50k, BudgetAbove50k} {
		assert.Falsef(t, b.Contains(r), "bucket %s", b)
	}
	assert.True(t, BudgetAll.Contains(r))
}

func TestApplySortKeys(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []int
	}{
		{SortBudgetHigh, []int{6, 5, 3, 2, 8, 9, 1, 7, 4}},
		{SortBudgetLow, []int{4, 7, 1, 9, 2, 3, 8, 5, 6}},
		{SortDeadline, []int{4, 1, 7, 9, 2, 8, 3, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := Apply(static.SampleItems(), DefaultState().WithSort(tt.key))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyBudgetHighAndLowAreReversedAtTheEnds(t *testing.T) {
	items := static.SampleItems()
	high := Apply(items, DefaultState().WithSort(SortBudgetHigh))
	low := Apply(items, DefaultState().WithSort(SortBudgetLow))

	assert.Equal(t, high[0].ID, low[len(low)-1].ID)
	assert.Equal(t, low[0].ID, high[len(high)-1].ID)
}

func TestApplyDeadlineIsLexicographic(t *testing.T) {
	items := []model.Item{
		{ID: 1, Duration: "2-3 months"},
		{ID: 2, Duration: "10-12 months"},
	}
	assert.Equal(t, []int{2, 1}, ids(Apply(items, DefaultState().WithSort(SortDeadline))))
}

func TestApplyMalformedPostedSortsFirst(t *testing.T) {
	items := []model.Item{
		{ID: 1, PostedAgo: "1 day ago"},
		{ID: 2, PostedAgo: "just now-ish"},
	}
	assert.Equal(t, []int{2, 1}, ids(Apply(items, DefaultState())))
}

func TestApplyIsIdempotentAndDoesNotMutate(t *testing.T) {
	items := static.SampleItems()
	before := ids(items)
	state := DefaultState().WithSort(SortBudgetHigh).WithQuery("a")

	first := Apply(items, state)
	second := Apply(items, state)

	assert.Equal(t, first, second)
	assert.Equal(t, before, ids(items))
}

func TestPage(t *testing.T) {
	seq := Apply(static.SampleItems(), DefaultState())

	assert.Equal(t, []int{2, 1, 8, 3, 7, 9}, ids(Page(seq, 0, 6)))
	assert.Equal(t, []int{4, 5, 6}, ids(Page(seq, 1, 6)))
	assert.Empty(t, Page(seq, 2, 6))
	assert.Empty(t, Page(seq, -1, 6))
	assert.Empty(t, Page(seq, 0, 0))
	assert.Empty(t, Page(seq, math.MaxInt/6+1, 6))
	assert.Empty(t, Page(seq, math.MaxInt, 1))
	assert.Equal(t, []int{6}, ids(Page(seq, 4, 2)))
}

func TestBuildHugePageIndexShowsEverything(t *testing.T) {
	state, err := ParseState("", "", "", "", strconv.Itoa(math.MaxInt), "")
	require.NoError(t, err)

	view := Build(static.SampleItems(), state)
	assert.Empty(t, view.Items)
	assert.Equal(t, 9, view.Total)
	assert.Equal(t, 9, view.Displayed)
	assert.Len(t, view.Shown, 9)
	assert.False(t, view.HasMore)
}

func TestHasMore(t *testing.T) {
	assert.True(t, HasMore(6, 9))
	assert.False(t, HasMore(9, 9))
	assert.False(t, HasMore(10, 9))
	assert.False(t, HasMore(0, 0))
}

func TestBuildPagesThroughSample(t *testing.T) {
	items := static.SampleItems()

	first := Build(items, DefaultState())
	assert.Equal(t, []int{2, 1, 8, 3, 7, 9}, ids(first.Items))
	assert.Equal(t, ids(first.Items), ids(first.Shown))
	assert.Equal(t, 9, first.Total)
	assert.Equal(t, 6, first.Displayed)
	assert.True(t, first.HasMore)
	assert.False(t, first.Empty)

	state := DefaultState()
	state.PageIndex = 1
	second := Build(items, state)
	assert.Equal(t, []int{4, 5, 6}, ids(second.Items))
	assert.Equal(t, []int{2, 1, 8, 3, 7, 9, 4, 5, 6}, ids(second.Shown))
	assert.Equal(t, 9, second.Displayed)
	assert.False(t, second.HasMore)
}

func TestBuildEmptyResult(t *testing.T) {
	view := Build(static.SampleItems(), DefaultState().WithBudget(BudgetAbove50k))
	assert.True(t, view.Empty)
	assert.Zero(t, view.Total)
	assert.False(t, view.HasMore)
	assert.Empty(t, view.Items)
}
