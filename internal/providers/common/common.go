package common

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatBudgetText renders budget bounds the way listings display them. Only
// the two-sided form round-trips through model.ParseBudget; callers holding
// numeric bounds set the range with model.RangeFromBounds.
func FormatBudgetText(amountMin, amountMax int64) string {
	if amountMin > 0 && amountMax > 0 {
		return FormatAmount(amountMin) + " - " + FormatAmount(amountMax)
	}
	if amountMax > 0 {
		return "Up to " + FormatAmount(amountMax)
	}
	if amountMin > 0 {
		return "From " + FormatAmount(amountMin)
	}
	return "Negotiable"
}

func FormatAmount(amount int64) string {
	return printer.Sprintf("$%d", amount)
}

// CleanText collapses runs of whitespace, as left behind by HTML templates.
func CleanText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// LeadingInt reads the first run of digits in value ("12 proposals" -> 12).
func LeadingInt(value string) int {
	start := strings.IndexFunc(value, isDigit)
	if start < 0 {
		return 0
	}
	end := start
	for end < len(value) && isDigit(rune(value[end])) {
		end++
	}
	n, err := strconv.Atoi(value[start:end])
	if err != nil {
		return 0
	}
	return n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ToInt64 reads loosely typed JSON numbers (decoded with UseNumber) and
// numeric strings. Anything else is 0.
func ToInt64(value any) int64 {
	switch v := value.(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case jsonNumber:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return i
		}
	}
	return 0
}

type jsonNumber interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

func ToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case jsonNumber:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
