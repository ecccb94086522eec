// Package config provides configuration management for the application.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting: every problem found while loading is gathered
// and reported at once instead of failing on the first one.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment mode names. Anything other than EnvProduction is treated as a
// development-style environment where diagnostic detail may be exposed.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret     string        // Secret key for signing JWTs
	TokenDuration time.Duration // Lifetime of issued access tokens
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port        string // Port for the HTTP server
	Environment string // "development" or "production"
	CORSOrigin  string // Allowed CORS origin, "*" by default
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *PoolConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

// getRequiredEnv reads a required environment variable, collecting an error
// into errs when it is absent. This promotes a "fail fast" approach for
// critical missing configuration.
func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an environment variable, falling back to defaultValue.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt reads an environment variable as an int. The default is
// used when the variable is unset; a parse failure is collected as an error.
func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvDuration reads an environment variable as a time.Duration
// string such as "15m" or "24h".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the connection pool size within reasonable bounds.
func clampPoolSize(size int, varName string, errs *[]string) int {
	if size < 2 {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is less than minimum 2, clamping to 2", varName, size))
		size = 2
	}
	if size > 100 {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100, clamping to 100", varName, size))
		size = 100
	}
	return size
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	// Database configuration.
	dbUser := getRequiredEnv("DB_USER", &errs)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errs)
	dbName := getRequiredEnv("DB_NAME", &errs)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errs)
	poolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errs), "DB_POOL_SIZE", &errs)

	dbConfig := &PoolConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxSize:  poolSize,
	}

	// Auth configuration. Tokens default to a 24 hour lifetime.
	authConfig := &AuthConfig{
		JWTSecret:     getRequiredEnv("JWT_SECRET", &errs),
		TokenDuration: getOptionalEnvDuration("JWT_TOKEN_DURATION", 24*time.Hour, &errs),
	}

	environment := getOptionalEnv("ENVIRONMENT", EnvDevelopment)
	if environment != EnvDevelopment && environment != EnvProduction {
		errs = append(errs, fmt.Sprintf("invalid value for ENVIRONMENT: expected %q or %q, got %q",
			EnvDevelopment, EnvProduction, environment))
	}

	serverConfig := &ServerConfig{
		Port:        getOptionalEnv("PORT", "3000"),
		Environment: environment,
		CORSOrigin:  getOptionalEnv("CORS_ORIGIN", "*"),
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}

// IsProduction reports whether the server runs in production mode. Diagnostic
// detail (panic values, underlying error text) is suppressed in responses when
// this is true.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}
