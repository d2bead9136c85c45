package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) RefreshRecords(ctx echo.Context) error {
	count, err := c.records.Refresh(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"records":  count,
		"lastSync": c.records.LastSync().Format("15:04:05"),
	})
}
