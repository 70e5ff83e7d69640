package config

// EnvPrefix namespaces every environment variable this service reads.
const EnvPrefix = "YARIGA"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvDBDSN  = "YARIGA_DB_DSN"
	EnvDBHost = "YARIGA_DB_HOST"
	EnvDBUser = "YARIGA_DB_USER"
	EnvDBName = "YARIGA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
