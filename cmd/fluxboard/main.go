package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kdiomande/cntsci-flux/internal/api"
	"github.com/kdiomande/cntsci-flux/internal/pkg/config"
	"github.com/kdiomande/cntsci-flux/internal/pkg/constants"
	"github.com/kdiomande/cntsci-flux/internal/pkg/logger"
	"github.com/kdiomande/cntsci-flux/internal/pkg/store"
	"github.com/kdiomande/cntsci-flux/internal/pkg/store/xpgx"
	"github.com/kdiomande/cntsci-flux/internal/service/records"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer logger.Sync()

	if err := config.Load(); err != nil {
		logger.Fatal(ctx, err)
	}

	pool, err := xpgx.Connect(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	source := records.NewService(viper.GetString(constants.ViperSheetURL))
	go source.Run(ctx, viper.GetDuration(constants.ViperRefreshInterval))

	svc, err := api.NewAPIService(store.NewStore(pool), source)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperListenAddr))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}
