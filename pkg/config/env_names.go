package config

// EnvPrefix is passed to envconfig; individual fields pin their full names
// so the prefix only matters for variables without explicit tags.
const EnvPrefix = "POS"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	EnvAppEnv   = "POS_APP_ENV"
	EnvAppPort  = "POS_APP_PORT"
	EnvDBDriver = "POS_DB_DRIVER"
	EnvDBDSN    = "POS_DB_DSN"
)
