package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/kdiomande/cntsci-flux/internal/domain"
	"github.com/kdiomande/cntsci-flux/internal/pkg/constants"
	"github.com/kdiomande/cntsci-flux/internal/pkg/logger"
	"github.com/kdiomande/cntsci-flux/internal/pkg/store"
	"github.com/kdiomande/cntsci-flux/internal/pkg/utils"
	"github.com/labstack/gommon/random"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"motDePasse" validate:"required"`
}

type LoginResponse struct {
	User      *domain.User `json:"user"`
	AuthToken string       `json:"-"`
}

// Login checks the password by plain equality (the secret is opaque,
// there is no hashing scheme in the legacy user sheet this store was
// migrated from) and issues a signed auth token.
func (svc *Service) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	user, err := svc.store.GetUserByLogin(ctx, request.Login)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrBadCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.Password != request.Password {
		return nil, constants.ErrBadCredentials
	}

	logger.Debugf(ctx, "login: %s (%s)", user.Login, user.Assignment)

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{
		Login:     user.Login,
		SessionID: random.String(16),
	})
	if err != nil {
		return nil, err
	}

	return &LoginResponse{User: user, AuthToken: authToken}, nil
}

// CurrentUser resolves the auth cookie back to the stored user. The
// scope is always re-derived from the store row, never from the token,
// so a reassigned agent's visibility changes on their next request.
func (svc *Service) CurrentUser(ctx context.Context, rawToken string) (*domain.User, error) {
	token, err := utils.ParseAuthToken(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := svc.store.GetUserByLogin(ctx, token.Login)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}

type CreateUserRequest struct {
	DisplayName string `json:"nomAgent" validate:"required"`
	Login       string `json:"login" validate:"required"`
	Password    string `json:"motDePasse" validate:"required"`
	Assignment  string `json:"centreAffectation" validate:"required"`
}

// CreateUser registers an agent. The assignment must be a known center
// or one of the two supervisor sentinels; anything else would create an
// account whose scope pins to a center that does not exist.
func (svc *Service) CreateUser(ctx context.Context, request *CreateUserRequest) (*domain.User, error) {
	valid := domain.IsKnownCenter(request.Assignment) ||
		request.Assignment == domain.AllCentersSentinel ||
		request.Assignment == domain.HeadquartersSentinel
	if !valid {
		return nil, constants.NewCodedError(
			fmt.Sprintf("unknown assignment %q", request.Assignment), http.StatusBadRequest)
	}

	if _, err := svc.store.GetUserByLogin(ctx, request.Login); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrLoginTaken
		}
		return nil, err
	}

	user, err := svc.store.CreateUser(ctx, &domain.User{
		DisplayName: request.DisplayName,
		Login:       request.Login,
		Password:    request.Password,
		Assignment:  request.Assignment,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (svc *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return svc.store.ListUsers(ctx)
}

// DeleteUser removes an account. Outstanding tokens for that login keep
// failing CurrentUser's store lookup, so the session dies with the row.
func (svc *Service) DeleteUser(ctx context.Context, login string) error {
	if err := svc.store.DeleteUser(ctx, login); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	logger.Infof(ctx, "user deleted: %s", login)
	return nil
}
