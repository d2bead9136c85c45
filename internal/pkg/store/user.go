package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/kdiomande/cntsci-flux/internal/domain"
	"github.com/kdiomande/cntsci-flux/internal/pkg/constants"
	"github.com/kdiomande/cntsci-flux/internal/pkg/store/xpgx"
)

var userColumns = []string{"id", "display_name", "login", "password", "assignment", "created_at", "updated_at"}

func (s *store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := builder().Insert(tableUsers).
		Columns(userColumns[1:5]...).
		Values(user.DisplayName, user.Login, user.Password, user.Assignment).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	created, err := xpgx.Get[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", wrapErr(err))
	}

	return created, nil
}

func (s *store) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"login": login})

	selected, err := xpgx.Get[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) DeleteUser(ctx context.Context, login string) error {
	query := builder().Delete(tableUsers).
		Where(sq.Eq{"login": login})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return fmt.Errorf("delete user: %w", wrapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

func (s *store) ListUsers(ctx context.Context) ([]*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		OrderBy("assignment, display_name")

	selected, err := xpgx.Select[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
