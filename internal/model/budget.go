package model

import (
	"regexp"
	"strconv"
	"strings"
)

// BudgetRange is a closed interval in currency units.
type BudgetRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

var budgetAmountPattern = regexp.MustCompile(`\$?([\d,]+)`)

// ParseBudget reads "$<min> - $<max>" text. The parse is lossy: anything
// without two readable amounts, or with min above max, yields the zero range.
func ParseBudget(text string) BudgetRange {
	matches := budgetAmountPattern.FindAllString(text, -1)
	if len(matches) < 2 {
		return BudgetRange{}
	}

	amountMin, ok := parseAmount(matches[0])
	if !ok {
		return BudgetRange{}
	}
	amountMax, ok := parseAmount(matches[1])
	if !ok {
		return BudgetRange{}
	}
	if amountMin > amountMax {
		return BudgetRange{}
	}
	return BudgetRange{Min: amountMin, Max: amountMax}
}

// RangeFromBounds builds a range from stored bounds where zero means unset.
// An open upper bound collapses onto the lower one, so "from $60,000" is
// treated as exactly $60,000 by the buckets and sorts.
func RangeFromBounds(amountMin, amountMax int64) BudgetRange {
	amountMin, amountMax = max(amountMin, 0), max(amountMax, 0)
	if amountMax == 0 {
		amountMax = amountMin
	}
	if amountMin > amountMax {
		return BudgetRange{}
	}
	return BudgetRange{Min: amountMin, Max: amountMax}
}

func parseAmount(token string) (int64, bool) {
	digits := strings.NewReplacer("$", "", ",", "").Replace(token)
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
