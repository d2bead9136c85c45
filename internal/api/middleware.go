package api

import (
	"github.com/kdiomande/cntsci-flux/internal/domain"
	"github.com/kdiomande/cntsci-flux/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the auth cookie into the acting user and
// stores it on the request context. No cookie, or a stale one, is not
// an error: the request proceeds as a visitor (nil user), and the scope
// resolver locks visitors to the global view anyway.
func (svc *APIService) SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil || cookie.Value == "" {
			return next(ctx)
		}

		user, err := svc.authService.CurrentUser(ctx.Request().Context(), cookie.Value)
		if err != nil {
			return next(ctx)
		}

		ctx.Set(constants.CtxKeyUser, user)
		return next(ctx)
	}
}

// AdminMiddleware restricts a route to headquarters accounts.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		user, _ := ctx.Get(constants.CtxKeyUser).(*domain.User)
		if user == nil {
			return constants.ErrUnauthorized
		}
		if !domain.ScopeFor(user).Admin {
			return constants.ErrForbidden
		}
		return next(ctx)
	}
}
