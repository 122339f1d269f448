package infra

import (
	"context"

	"microservices-demo/catalog/domain"
)

// UserStore guarda a seed de usuários em memória.
// Nada escreve depois da construção, então não há lock.
type UserStore struct {
	users []domain.User
}

func NewUserStore(users []domain.User) *UserStore {
	return &UserStore{users: append([]domain.User(nil), users...)}
}

// List implementa domain.UserStore. Devolve uma cópia para que o chamador
// não consiga alterar a seed.
func (s *UserStore) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *UserStore) Get(_ context.Context, id int) (domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

type ItemStore struct {
	items []domain.Item
}

func NewItemStore(items []domain.Item) *ItemStore {
	return &ItemStore{items: append([]domain.Item(nil), items...)}
}

func (s *ItemStore) List(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *ItemStore) Get(_ context.Context, id int) (domain.Item, error) {
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.Item{}, domain.ErrItemNotFound
}
