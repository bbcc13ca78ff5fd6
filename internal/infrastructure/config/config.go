package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
)

// Config holds the process-wide settings read from defaults, the
// environment and an optional YAML file.
type Config struct {
	Port                     int
	StoreDriver              string
	SQLiteDSN                string
	ReconcileInterval        time.Duration
	ReconcileOnDashboardLoad bool
	ExpiredStageLabel        string
	EndingSoonDays           int
}

var ErrInvalidStoreDriver = errors.New("invalid store driver")

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("store_driver", StoreDynamoDB)
	v.SetDefault("sqlite_dsn", "crm.db")
	v.SetDefault("reconcile_interval", time.Hour)
	v.SetDefault("reconcile_on_dashboard_load", false)
	v.SetDefault("expired_stage_label", "Expirado")
	v.SetDefault("ending_soon_days", 30)
}

// Load reads configuration. Keys map to upper-case env vars (PORT,
// STORE_DRIVER, ...). An empty configFile skips the file lookup entirely.
func Load(configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{
		Port:                     v.GetInt("port"),
		StoreDriver:              strings.ToLower(strings.TrimSpace(v.GetString("store_driver"))),
		SQLiteDSN:                v.GetString("sqlite_dsn"),
		ReconcileInterval:        v.GetDuration("reconcile_interval"),
		ReconcileOnDashboardLoad: v.GetBool("reconcile_on_dashboard_load"),
		ExpiredStageLabel:        v.GetString("expired_stage_label"),
		EndingSoonDays:           v.GetInt("ending_soon_days"),
	}
	if cfg.StoreDriver != StoreDynamoDB && cfg.StoreDriver != StoreSQLite {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidStoreDriver, cfg.StoreDriver)
	}
	return cfg, nil
}
