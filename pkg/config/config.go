package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Reports      ReportsConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"POS_APP_ENV" default:"dev"`
	Port         string `envconfig:"POS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"POS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"POS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"POS_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"POS_DB_DSN" default:"file:pos.db?_fk=1"`

	MaxOpenConns int `envconfig:"POS_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns int `envconfig:"POS_DB_MAX_IDLE_CONNS" default:"1"`
}

type ReportsConfig struct {
	RecentSalesLimit int `envconfig:"POS_REPORTS_RECENT_SALES_LIMIT" default:"10"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"POS_AUTO_MIGRATE" default:"true"`
}

func (db *DBConfig) validate() error {
	switch db.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported %s value %q (expected %q or %q)",
			EnvDBDriver, db.Driver, DriverSQLite, DriverPostgres)
	}
	if strings.TrimSpace(db.DSN) == "" {
		return fmt.Errorf("%s is required", EnvDBDSN)
	}
	return nil
}
