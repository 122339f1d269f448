package application

import (
	"context"
	"fmt"

	"microservices-demo/catalog/domain"
)

// UserService concentra as regras de leitura de usuários.
type UserService struct {
	Store domain.UserStore
}

// List devolve todos os usuários na ordem da seed.
// Sem store configurado, devolve uma lista vazia (nunca nil).
func (s UserService) List(ctx context.Context) ([]domain.User, error) {
	if s.Store == nil {
		return []domain.User{}, nil
	}
	users, err := s.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s UserService) Get(ctx context.Context, id int) (domain.User, error) {
	if s.Store == nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	u, err := s.Store.Get(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}
