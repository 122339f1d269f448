package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microservices-demo/catalog/domain"
)

type fakeItemStore struct {
	items []domain.Item
}

func (f fakeItemStore) List(context.Context) ([]domain.Item, error) { return f.items, nil }

func (f fakeItemStore) Get(_ context.Context, id int) (domain.Item, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.Item{}, domain.ErrItemNotFound
}

func TestItemService_ListKeepsOrder(t *testing.T) {
	seed := []domain.Item{{ID: 102, Name: "ItemTwo", Price: 12.5}, {ID: 101, Name: "ItemOne", Price: 10}}
	svc := ItemService{Store: fakeItemStore{items: seed}}

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed, items)
}

func TestItemService_Get(t *testing.T) {
	svc := ItemService{Store: fakeItemStore{items: []domain.Item{{ID: 101, Name: "ItemOne", Price: 10}}}}

	it, err := svc.Get(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, "ItemOne", it.Name)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
