package application

import (
	"context"
	"fmt"

	"microservices-demo/catalog/domain"
)

// ItemService é o caso de uso de leitura de itens, simétrico a UserService.
type ItemService struct {
	Store domain.ItemStore
}

func (s ItemService) List(ctx context.Context) ([]domain.Item, error) {
	if s.Store == nil {
		return []domain.Item{}, nil
	}
	items, err := s.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

func (s ItemService) Get(ctx context.Context, id int) (domain.Item, error) {
	if s.Store == nil {
		return domain.Item{}, domain.ErrItemNotFound
	}
	it, err := s.Store.Get(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return it, nil
}
