package model

import "strings"

type Category string

const (
	CategoryDeFi           Category = "defi"
	CategoryNFT            Category = "nft"
	CategoryDAO            Category = "dao"
	CategoryGaming         Category = "gaming"
	CategoryInfrastructure Category = "infrastructure"
)

var Categories = []Category{
	CategoryDeFi,
	CategoryNFT,
	CategoryDAO,
	CategoryGaming,
	CategoryInfrastructure,
}

// ParseCategory accepts any casing and surrounding whitespace.
func ParseCategory(value string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}
