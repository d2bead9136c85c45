package api

import (
	"context"

	"github.com/kdiomande/cntsci-flux/internal/api/controller"
	"github.com/kdiomande/cntsci-flux/internal/pkg/constants"
	"github.com/kdiomande/cntsci-flux/internal/pkg/logger"
	"github.com/kdiomande/cntsci-flux/internal/pkg/store"
	"github.com/kdiomande/cntsci-flux/internal/service/auth"
	"github.com/kdiomande/cntsci-flux/internal/service/records"
	"github.com/kdiomande/cntsci-flux/internal/service/report"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
)

type APIService struct {
	router      *echo.Echo
	authService *auth.Service
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store, source *records.Service) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	svc.authService = auth.NewService(store)
	reportService := report.NewService(source)

	api := svc.router.Group("/api/v1", svc.SessionMiddleware)
	cntrl := controller.NewController(reportService, svc.authService, source)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", cntrl.Login)
	authGroup.DELETE("/logout", cntrl.Logout)

	reportGroup := api.Group("/report")
	reportGroup.GET("/dashboard", cntrl.GetDashboard)
	reportGroup.GET("/rollup", cntrl.GetRollup)
	reportGroup.GET("/weekly", cntrl.GetWeekly)

	recordsGroup := api.Group("/records")
	recordsGroup.POST("/refresh", cntrl.RefreshRecords)

	users := api.Group("/users", svc.AdminMiddleware)
	users.GET("/list", cntrl.ListUsers)
	users.POST("/create", cntrl.CreateUser)
	users.DELETE("/:login", cntrl.DeleteUser)

	return svc, nil
}
