// Package config reads the server settings from the environment with
// envconfig. Load rejects values the tags cannot express, such as a zero
// series cap; LoadOrDefault falls back to Default instead.
//
//	PORT, HOST, CORS_ORIGINS
//	LOG_LEVEL, LOG_DEV
//	RATE_LIMIT_ENABLED, RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_GLOBAL
//	SERIES_MAX
//
// SERIES_MAX bounds every series expansion the engine runs and is fixed
// for the life of the process.
package config
