package config

// EnvPrefix is the envconfig prefix shared by every variable.
const EnvPrefix = "CRAFTROOTS"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv            = "CRAFTROOTS_APP_ENV"
	EnvPort              = "CRAFTROOTS_APP_PORT"
	EnvDBDSN             = "CRAFTROOTS_DB_DSN"
	EnvDBHost            = "CRAFTROOTS_DB_HOST"
	EnvDBUser            = "CRAFTROOTS_DB_USER"
	EnvDBName            = "CRAFTROOTS_DB_NAME"
	EnvRedisURL          = "CRAFTROOTS_REDIS_URL"
	EnvJWTSecret         = "CRAFTROOTS_JWT_SECRET"
	EnvJWTIssuer         = "CRAFTROOTS_JWT_ISSUER"
	EnvAdminPasswordHash = "CRAFTROOTS_ADMIN_PASSWORD_HASH"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
