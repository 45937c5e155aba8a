package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name string
		text string
		want BudgetRange
	}{
		{name: "dollar range", text: "$15,000 - $25,000", want: BudgetRange{Min: 15000, Max: 25000}},
		{name: "no dollar signs", text: "4000 - 6000", want: BudgetRange{Min: 4000, Max: 6000}},
		{name: "equal bounds", text: "$5,000 - $5,000", want: BudgetRange{Min: 5000, Max: 5000}},
		{name: "single amount", text: "$5,000", want: BudgetRange{}},
		{name: "empty", text: "", want: BudgetRange{}},
		{name: "words only", text: "negotiable", want: BudgetRange{}},
		{name: "inverted", text: "$9,000 - $1,000", want: BudgetRange{}},
		{name: "bare comma token", text: ", - $1,000", want: BudgetRange{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBudget(tt.text))
		})
	}
}

func TestRangeFromBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max int64
		want     BudgetRange
	}{
		{name: "both bounds", min: 40000, max: 60000, want: BudgetRange{Min: 40000, Max: 60000}},
		{name: "upper only", max: 5000, want: BudgetRange{Min: 0, Max: 5000}},
		{name: "lower only", min: 60000, want: BudgetRange{Min: 60000, Max: 60000}},
		{name: "none", want: BudgetRange{}},
		{name: "inverted", min: 9000, max: 1000, want: BudgetRange{}},
		{name: "negative", min: -5, max: 100, want: BudgetRange{Min: 0, Max: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangeFromBounds(tt.min, tt.max))
		})
	}
}

func TestParsePostedAgo(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"1 day ago", 1},
		{"2 days ago", 2},
		{"1 week ago", 7},
		{"3 weeks ago", 21},
		{"2 months ago", 60},
		{"yesterday", 0},
		{"", 0},
		{"5 years ago", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePostedAgo(tt.text))
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory(" DeFi ")
	assert.True(t, ok)
	assert.Equal(t, CategoryDeFi, c)

	_, ok = ParseCategory("social")
	assert.False(t, ok)
}

func TestNewItemDerivesFields(t *testing.T) {
	item := NewItem(1, "t", "d", "$1,000 - $2,000", "1-2 months", CategoryDAO, []string{"Go"}, "2 weeks ago", -3)

	assert.Equal(t, BudgetRange{Min: 1000, Max: 2000}, item.BudgetRange)
	assert.Equal(t, 14, item.PostedDays())
	assert.Equal(t, 0, item.Proposals)
}
