package controller

import (
	"net/http"

	"github.com/kdiomande/cntsci-flux/internal/service/auth"
	"github.com/labstack/echo/v4"
)

func (c *Controller) ListUsers(ctx echo.Context) error {
	users, err := c.auth.ListUsers(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, users)
}

func (c *Controller) CreateUser(ctx echo.Context) error {
	request := new(auth.CreateUserRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	user, err := c.auth.CreateUser(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, user)
}

func (c *Controller) DeleteUser(ctx echo.Context) error {
	if err := c.auth.DeleteUser(ctx.Request().Context(), ctx.Param("login")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
