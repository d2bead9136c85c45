package controller

import (
	"net/http"

	"github.com/kdiomande/cntsci-flux/internal/domain"
	"github.com/kdiomande/cntsci-flux/internal/service/report"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetDashboard(ctx echo.Context) error {
	filter := report.Filter{
		Window: domain.Window{
			Year:  ctx.QueryParam("year"),
			Month: pad2(ctx.QueryParam("month")),
			Day:   pad2(ctx.QueryParam("day")),
		},
		Center: domain.ParseCenterFilter(ctx.QueryParam("center")),
	}

	dashboard, err := c.report.Dashboard(ctx.Request().Context(), currentUser(ctx), filter)
	if err != nil {
		return err
	}

	type response struct {
		*domain.Dashboard
		LastSync string `json:"lastSync,omitempty"`
	}
	resp := response{Dashboard: dashboard}
	if t := c.records.LastSync(); !t.IsZero() {
		resp.LastSync = t.Format("15:04:05")
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) GetRollup(ctx echo.Context) error {
	rollup := c.report.Rollup(currentUser(ctx), domain.ParseCenterFilter(ctx.QueryParam("center")))
	return ctx.JSON(http.StatusOK, rollup)
}

func (c *Controller) GetWeekly(ctx echo.Context) error {
	breakdown := c.report.Weekly(
		ctx.Request().Context(),
		currentUser(ctx),
		domain.ParseCenterFilter(ctx.QueryParam("center")),
		ctx.QueryParam("date"),
	)
	return ctx.JSON(http.StatusOK, breakdown)
}

// pad2 zero-pads single-digit month/day query values so "3" and "03"
// select the same bucket. Year values pass through untouched.
func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
