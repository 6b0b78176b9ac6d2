package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Builder BuilderConfig
	Store   StoreConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

// BuilderConfig controls project generation and gradle invocation.
type BuilderConfig struct {
	ProjectsDir      string
	TemplatesDir     string
	AndroidSDKRoot   string
	BuildMode        string // "debug" or "release"
	BuildTimeoutSecs int    // 0 disables the timeout
	RequireToolchain bool
	BuildRate        float64 // build requests per second
	BuildBurst       int
}

// StoreConfig selects the project record store backend.
type StoreConfig struct {
	Backend       string // "file" or "redis"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Builder: BuilderConfig{
			ProjectsDir:      getEnv("PROJECTS_DIR", "projects"),
			TemplatesDir:     getEnv("TEMPLATES_DIR", "templates"),
			AndroidSDKRoot:   getEnv("ANDROID_SDK_ROOT", ""),
			BuildMode:        getEnv("BUILD_MODE", "debug"),
			BuildTimeoutSecs: getEnvAsInt("BUILD_TIMEOUT_SECONDS", 0),
			RequireToolchain: getEnvAsBool("REQUIRE_TOOLCHAIN", false),
			BuildRate:        getEnvAsFloat("BUILD_RATE", 5),
			BuildBurst:       getEnvAsInt("BUILD_BURST", 10),
		},
		Store: StoreConfig{
			Backend:       getEnv("STORE_BACKEND", "file"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Builder.BuildMode != "debug" && c.Builder.BuildMode != "release" {
		return fmt.Errorf("BUILD_MODE must be \"debug\" or \"release\", got %q", c.Builder.BuildMode)
	}

	if c.Store.Backend != "file" && c.Store.Backend != "redis" {
		return fmt.Errorf("STORE_BACKEND must be \"file\" or \"redis\", got %q", c.Store.Backend)
	}

	return nil
}

// EnsureDirs creates the projects and templates roots if they are missing.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Builder.ProjectsDir, c.Builder.TemplatesDir} {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", dir, err)
		}
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", abs, err)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
