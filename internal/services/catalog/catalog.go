package catalog

import (
	"errors"
	"slices"

	"alpha-listings/internal/model"
)

var ErrNotFound = errors.New("project not found")

// Catalog is the full, immutable listing set.
type Catalog struct {
	items []model.Item
	byID  map[int]int
}

func New(items []model.Item) *Catalog {
	c := &Catalog{
		items: make([]model.Item, len(items)),
		byID:  make(map[int]int, len(items)),
	}
	for i, item := range items {
		item.Tags = slices.Clone(item.Tags)
		c.items[i] = item
		c.byID[item.ID] = i
	}
	return c
}

// Items returns a copy; callers may reorder it freely.
func (c *Catalog) Items() []model.Item {
	return slices.Clone(c.items)
}

func (c *Catalog) Len() int {
	return len(c.items)
}

func (c *Catalog) Find(id int) (model.Item, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Item{}, ErrNotFound
	}
	return c.items[i], nil
}
