package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Binder decodes JSON bodies with sonic and falls back to echo's
// default binder for query and path parameters.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength != 0 && req.Header.Get(echo.HeaderContentType) == echo.MIMEApplicationJSON {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("read body: %s", err))
		}
		if err := sonic.Unmarshal(body, i); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("decode body: %s", err))
		}
		return b.fallback.BindQueryParams(c, i)
	}
	return b.fallback.Bind(i, c)
}
