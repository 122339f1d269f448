package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound é a única falha de domínio: o ID pedido não existe.
// Os erros por tipo embrulham ErrNotFound, então errors.Is(err, ErrNotFound)
// vale para ambos.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrItemNotFound = fmt.Errorf("item %w", ErrNotFound)
)

// UserStore é a fonte somente-leitura de usuários.
//
// List devolve a sequência completa na ordem da seed.
// Get devolve ErrUserNotFound quando o ID não existe.
type UserStore interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int) (User, error)
}

// ItemStore é o equivalente de UserStore para itens.
type ItemStore interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int) (Item, error)
}
