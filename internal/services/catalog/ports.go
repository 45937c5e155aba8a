package catalog

import (
	"context"

	"alpha-listings/internal/model"
)

// Source is one origin of listings, loaded once at start-up.
type Source interface {
	Source() string
	Load(ctx context.Context) ([]model.Item, error)
}
