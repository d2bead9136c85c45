package controller

import (
	"net/http"
	"time"

	"github.com/kdiomande/cntsci-flux/internal/pkg/constants"
	"github.com/kdiomande/cntsci-flux/internal/service/auth"
	"github.com/labstack/echo/v4"
)

func (c *Controller) Login(ctx echo.Context) error {
	request := new(auth.LoginRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	resp, err := c.auth.Login(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    resp.AuthToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, resp)
}

// Logout drops the auth cookie. Scope reverts to visitor on the next
// request; any chosen center filter is a client concern and dies with
// the session.
func (c *Controller) Logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
	return ctx.NoContent(http.StatusNoContent)
}
