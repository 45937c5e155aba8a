package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alpha-listings/internal/model"
)

func TestMapProject(t *testing.T) {
	item := mapProject(projectRow{
		ID:          6,
		Title:       "Decentralized Exchange (DEX)",
		Description: "Create a high-performance DEX.",
		BudgetMin:   40000,
		BudgetMax:   60000,
		Duration:    "8-10 months",
		Category:    "defi",
		Skills:      []string{"Solidity", "React"},
		Proposals:   25,
		PostedAgo:   "1 week ago",
	})

	assert.Equal(t, 6, item.ID)
	assert.Equal(t, "$40,000 - $60,000", item.Budget)
	assert.Equal(t, model.BudgetRange{Min: 40000, Max: 60000}, item.BudgetRange)
	assert.Equal(t, model.CategoryDeFi, item.Category)
	assert.Equal(t, 7, item.PostedDays())
	assert.Equal(t, 25, item.Proposals)
}

func TestMapProjectWithoutBudget(t *testing.T) {
	item := mapProject(projectRow{ID: 1, BudgetMax: 0})
	assert.Equal(t, "Negotiable", item.Budget)
	assert.Equal(t, model.BudgetRange{}, item.BudgetRange)
}

func TestMapProjectOneSidedBudget(t *testing.T) {
	upTo := mapProject(projectRow{ID: 2, BudgetMax: 5000, Category: "dao"})
	assert.Equal(t, "Up to $5,000", upTo.Budget)
	assert.Equal(t, model.BudgetRange{Min: 0, Max: 5000}, upTo.BudgetRange)

	from := mapProject(projectRow{ID: 3, BudgetMin: 60000, Category: "defi"})
	assert.Equal(t, "From $60,000", from.Budget)
	assert.Equal(t, model.BudgetRange{Min: 60000, Max: 60000}, from.BudgetRange)
}
