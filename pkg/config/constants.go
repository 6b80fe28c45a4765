package config

const (
	EnvPrefix = "STOCKPILOT"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	EnvAppEnv = "STOCKPILOT_APP_ENV"
	EnvDBDSN  = "STOCKPILOT_DB_DSN"
)
