package repositories

import (
	"context"

	"alpha-listings/internal/model"
)

// ProjectRepository is a read-only view of stored listings.
type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]model.Item, error)
}
