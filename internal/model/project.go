package model

// Item is a single project listing as shown on the projects page.
type Item struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Budget      string      `json:"budget"`
	BudgetRange BudgetRange `json:"budget_range"`
	Duration    string      `json:"duration"`
	Category    Category    `json:"category"`
	Tags        []string    `json:"tags"`
	PostedAgo   string      `json:"posted_ago"`
	Proposals   int         `json:"proposals"`
}

// NewItem fills the derived fields of an item from its raw text.
func NewItem(id int, title, description, budget, duration string, category Category, tags []string, postedAgo string, proposals int) Item {
	if proposals < 0 {
		proposals = 0
	}
	return Item{
		ID:          id,
		Title:       title,
		Description: description,
		Budget:      budget,
		BudgetRange: ParseBudget(budget),
		Duration:    duration,
		Category:    category,
		Tags:        tags,
		PostedAgo:   postedAgo,
		Proposals:   proposals,
	}
}

// PostedDays is the day count of PostedAgo, see ParsePostedAgo.
func (i Item) PostedDays() int {
	return ParsePostedAgo(i.PostedAgo)
}
