package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"alpha-listings/internal/model"
	"alpha-listings/internal/providers/common"
)

const listProjectsSQL = `
SELECT id, title, description, budget_min, budget_max, duration, category, skills, proposals, posted_ago
FROM projects
ORDER BY id`

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Source() string {
	return "postgres"
}

// Load lets the repository act as a catalog source.
func (r *ProjectRepository) Load(ctx context.Context) ([]model.Item, error) {
	return r.ListProjects(ctx)
}

func (r *ProjectRepository) ListProjects(ctx context.Context) ([]model.Item, error) {
	rows, err := r.pool.Query(ctx, listProjectsSQL)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByPos[projectRow])
	if err != nil {
		return nil, fmt.Errorf("scan projects: %w", err)
	}

	items := make([]model.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, mapProject(rec))
	}
	return items, nil
}

type projectRow struct {
	ID          int32
	Title       string
	Description string
	BudgetMin   int64
	BudgetMax   int64
	Duration    string
	Category    string
	Skills      []string
	Proposals   int32
	PostedAgo   string
}

func mapProject(row projectRow) model.Item {
	item := model.NewItem(
		int(row.ID),
		row.Title,
		row.Description,
		common.FormatBudgetText(row.BudgetMin, row.BudgetMax),
		row.Duration,
		model.Category(row.Category),
		row.Skills,
		row.PostedAgo,
		int(row.Proposals),
	)
	item.BudgetRange = model.RangeFromBounds(row.BudgetMin, row.BudgetMax)
	return item
}
