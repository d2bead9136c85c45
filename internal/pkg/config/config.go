package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kdiomande/cntsci-flux/internal/pkg/constants"
	"github.com/spf13/viper"
)

// Load reads configuration from config.yaml (if present next to the
// binary or in /etc/fluxboard) and from FLUX_* environment variables.
// Env wins over file.
func Load() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/fluxboard")

	viper.SetEnvPrefix("flux")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperRefreshInterval, 5*time.Minute)
	viper.SetDefault(constants.ViperCORSOrigin, "http://localhost:3000")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if viper.GetString(constants.ViperSheetURL) == "" {
		return fmt.Errorf("sheet_url is required")
	}
	if viper.GetString(constants.ViperJWTSecret) == "" {
		return fmt.Errorf("jwt_secret is required")
	}

	return nil
}
