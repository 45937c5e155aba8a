package model

import (
	"regexp"
	"strconv"
)

var postedAgoPattern = regexp.MustCompile(`(\d+)\s+(day|week|month)s?\s+ago`)

// ParsePostedAgo converts "<N> day|week|month(s) ago" to a day count.
// Months count as 30 days. Unreadable text returns 0, which sorts as the
// most recent listing.
func ParsePostedAgo(text string) int {
	m := postedAgoPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	switch m[2] {
	case "day":
		return n
	case "week":
		return n * 7
	case "month":
		return n * 30
	}
	return 0
}
