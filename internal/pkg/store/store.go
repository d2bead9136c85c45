package store

import (
	"context"

	"github.com/kdiomande/cntsci-flux/internal/domain"
	"github.com/kdiomande/cntsci-flux/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, login string) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
