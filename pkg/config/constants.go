package config

// EnvPrefix is passed to envconfig.Process; every variable below carries it.
const EnvPrefix = "printshop"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv     = "PRINTSHOP_APP_ENV"
	EnvPort       = "PRINTSHOP_APP_PORT"
	EnvDBDSN      = "PRINTSHOP_DB_DSN"
	EnvDBHost     = "PRINTSHOP_DB_HOST"
	EnvDBUser     = "PRINTSHOP_DB_USER"
	EnvDBName     = "PRINTSHOP_DB_NAME"
	EnvRedisURL   = "PRINTSHOP_REDIS_URL"
	EnvJWTSecret  = "PRINTSHOP_JWT_SECRET"
	EnvJWTIssuer  = "PRINTSHOP_JWT_ISSUER"
	EnvJWTExpMins = "PRINTSHOP_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
