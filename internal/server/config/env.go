package config

import "os"

// lookupEnv is a seam for tests.
var lookupEnv = os.LookupEnv

// parseEnv overlays the variables used by container deployments:
//
//	JWT_SECRET    session signing secret
//	DATABASE_DSN  PostgreSQL DSN
//	PORT          HTTP port; becomes ":<PORT>"
//	LOG_LEVEL     debug, info, warn or error
//
// Unset variables leave the current values untouched.
func parseEnv(config *Config) {
	if v, ok := lookupEnv("JWT_SECRET"); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := lookupEnv("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := lookupEnv("PORT"); ok && v != "" {
		config.EndpointAddrHTTP = ":" + v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
}
