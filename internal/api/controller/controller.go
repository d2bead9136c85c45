package controller

import (
	"github.com/kdiomande/cntsci-flux/internal/domain"
	"github.com/kdiomande/cntsci-flux/internal/pkg/constants"
	"github.com/kdiomande/cntsci-flux/internal/service/auth"
	"github.com/kdiomande/cntsci-flux/internal/service/records"
	"github.com/kdiomande/cntsci-flux/internal/service/report"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	report  *report.Service
	auth    *auth.Service
	records *records.Service
}

func NewController(report *report.Service, auth *auth.Service, records *records.Service) *Controller {
	return &Controller{report: report, auth: auth, records: records}
}

// currentUser returns the acting user set by the session middleware, or
// nil for a visitor.
func currentUser(ctx echo.Context) *domain.User {
	user, _ := ctx.Get(constants.CtxKeyUser).(*domain.User)
	return user
}
