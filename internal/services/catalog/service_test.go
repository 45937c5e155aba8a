package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpha-listings/internal/model"
	"alpha-listings/internal/providers/static"
)

type fakeSource struct {
	name  string
	items []model.Item
	err   error
}

func (f fakeSource) Source() string { return f.name }

func (f fakeSource) Load(context.Context) ([]model.Item, error) {
	return f.items, f.err
}

func TestServiceLoadMergesInSourceOrder(t *testing.T) {
	svc := NewService([]Source{
		static.NewSource(),
		fakeSource{name: "extra", items: []model.Item{
			{ID: 3, Title: "duplicate of the DAO listing", Category: model.CategoryDAO},
			{ID: 10, Title: "Indexer", Category: "Infrastructure"},
			{ID: 11, Title: "Social", Category: "social"},
		}},
	})

	cat, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, cat.Len())

	dao, err := cat.Find(3)
	require.NoError(t, err)
	assert.Equal(t, "DAO Governance Platform", dao.Title)

	indexer, err := cat.Find(10)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryInfrastructure, indexer.Category)

	_, err = cat.Find(11)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceLoadToleratesFailingSource(t *testing.T) {
	svc := NewService([]Source{
		fakeSource{name: "broken", err: errors.New("connection refused")},
		static.NewSource(),
	})

	cat, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, cat.Len())
}

func TestServiceLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService([]Source{static.NewSource()}).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCatalogItemsIsACopy(t *testing.T) {
	cat := New(static.SampleItems())

	items := cat.Items()
	items[0].Title = "changed"
	items[0], items[1] = items[1], items[0]

	first, err := cat.Find(1)
	require.NoError(t, err)
	assert.Equal(t, "DeFi Yield Farming Protocol", first.Title)
	assert.Equal(t, 1, cat.Items()[0].ID)
}
