// Package config reads process configuration directly from the
// environment, mirroring the teacher's cmd/server/main.go style of
// inline os.Getenv lookups rather than a config-struct framework.
package config

import "os"

// DefaultPort is used when PORT is unset.
const DefaultPort = "3001"

// PortFromEnv returns the PORT environment variable, or DefaultPort if
// unset.
func PortFromEnv() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return DefaultPort
}

// DefaultLogLevel is used when BAZAAR_LOG_LEVEL is unset.
const DefaultLogLevel = "info"

// LogLevelFromEnv returns the BAZAAR_LOG_LEVEL environment variable, or
// DefaultLogLevel if unset.
func LogLevelFromEnv() string {
	if l := os.Getenv("BAZAAR_LOG_LEVEL"); l != "" {
		return l
	}
	return DefaultLogLevel
}

// AllowedOriginFromEnv returns the CORS allowed origin, defaulting to the
// teacher's local-dev frontend origin.
func AllowedOriginFromEnv() string {
	if o := os.Getenv("BAZAAR_ALLOWED_ORIGIN"); o != "" {
		return o
	}
	return "http://localhost:3000"
}
