// Package config provides configuration management for the container optimizer.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/container-optimizer/internal/domain/model"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Engine   EngineConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
}

// EngineConfig holds optimization engine configuration.
type EngineConfig struct {
	// SolverTimeLimit bounds a single solver invocation.
	SolverTimeLimit time.Duration
	// SolverMaxNodes bounds the branch-and-bound search tree.
	SolverMaxNodes int
	// Defaults is the configuration applied when a request carries no
	// inline config and no preset is active.
	Defaults model.OptimizationConfig
}

// CacheConfig holds result cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	RunsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 60*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Engine: EngineConfig{
			SolverTimeLimit: getEnvDuration("SOLVER_TIME_LIMIT", 30*time.Second),
			SolverMaxNodes:  getEnvInt("SOLVER_MAX_NODES", 0),
			Defaults:        loadDefaultOptimizationConfig(),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "container_optimizer"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			RunsTTL:                        getEnvDuration("MONGODB_RUNS_TTL", 90*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

// loadDefaultOptimizationConfig reads the fallback optimization defaults,
// keeping the built-in values for anything not overridden.
func loadDefaultOptimizationConfig() model.OptimizationConfig {
	cfg := model.DefaultOptimizationConfig()
	cfg.ContainerVolumeM3 = getEnvFloat("CONTAINER_VOLUME_M3", cfg.ContainerVolumeM3)
	cfg.ContainerMaxWeightKg = getEnvFloat("CONTAINER_MAX_WEIGHT_KG", cfg.ContainerMaxWeightKg)
	cfg.AvailableBudget = getEnvFloat("AVAILABLE_BUDGET", cfg.AvailableBudget)
	cfg.GlobalLeadTimeDays = getEnvInt("GLOBAL_LEAD_TIME_DAYS", cfg.GlobalLeadTimeDays)
	cfg.WeightProfit = getEnvFloat("WEIGHT_PROFIT", cfg.WeightProfit)
	cfg.WeightDensity = getEnvFloat("WEIGHT_DENSITY", cfg.WeightDensity)
	cfg.WeightVelocity = getEnvFloat("WEIGHT_VELOCITY", cfg.WeightVelocity)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
