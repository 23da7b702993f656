// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Bot    BotConfig
	Search SearchConfig
	Admin  AdminConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `validate:"required,oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `validate:"required,oneof=debug info warn warning error"`
}

// BotConfig holds Telegram bot configuration.
type BotConfig struct {
	// Token authenticates the bot against the Telegram Bot API.
	Token string `validate:"required"`
}

// SearchConfig holds search provider configuration.
type SearchConfig struct {
	// APIKey is the Google Custom Search API key.
	APIKey string `validate:"required"`
	// EngineID is the Custom Search Engine id (cx parameter).
	EngineID string `validate:"required"`
	// Timeout bounds each outbound search request (default: 10s).
	Timeout time.Duration `validate:"gt=0"`
	// MaxResults caps results requested per search (default: 3).
	MaxResults int `validate:"gt=0,lte=10"`
}

// AdminConfig holds administrator configuration.
type AdminConfig struct {
	// UserID is the Telegram user id of the administrator (default: 0).
	// The admin is the only identity allowed to grant premium access.
	UserID int64
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	// Define command-line flags.
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	botToken := flag.String("bot-token", "", "Telegram bot token")
	searchAPIKey := flag.String("search-api-key", "", "Google Custom Search API key")
	searchEngineID := flag.String("search-engine-id", "", "Google Custom Search engine id")
	searchTimeout := flag.String("search-timeout", "", "Outbound search timeout (default: 10s)")
	searchMaxResults := flag.String("search-max-results", "", "Results requested per search (default: 3)")
	adminUserID := flag.String("admin-user-id", "", "Telegram user id of the administrator (default: 0)")
	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Bot: BotConfig{
			Token: getConfigValue(*botToken, "BOT_TOKEN", ""),
		},
		Search: SearchConfig{
			APIKey:     getConfigValue(*searchAPIKey, "GOOGLE_API_KEY", ""),
			EngineID:   getConfigValue(*searchEngineID, "CSE_ID", ""),
			MaxResults: getIntConfigValue(*searchMaxResults, "SEARCH_MAX_RESULTS", 3),
		},
		Admin: AdminConfig{
			UserID: getInt64ConfigValue(*adminUserID, "ADMIN_USER_ID", 0),
		},
	}

	// Parse search timeout.
	timeoutStr := getConfigValue(*searchTimeout, "SEARCH_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid search timeout %q: %w", timeoutStr, err)
	}
	cfg.Search.Timeout = timeout

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var invalid []string
		for _, fe := range err.(validator.ValidationErrors) {
			invalid = append(invalid, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("invalid fields: %s", strings.Join(invalid, ", "))
	}
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strValue)
	if err != nil {
		return defaultValue
	}
	return result
}

// getInt64ConfigValue returns an int64 from flag, env var, or default.
func getInt64ConfigValue(flagValue, envKey string, defaultValue int64) int64 {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.ParseInt(strValue, 10, 64)
	if err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
