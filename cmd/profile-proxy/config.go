package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// WarmupConfig controls the startup cache warmer.
type WarmupConfig struct {
	MaxConcurrency int      `yaml:"max_concurrency"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	BusinessIDs    []string `yaml:"business_ids"`
}

// ProxyConfig holds the full server configuration. Values come from an
// optional YAML file (with $VAR expansion) overridden by environment
// variables, which a local .env file may supply.
type ProxyConfig struct {
	Port       string       `yaml:"port" validate:"required"`
	BackendURL string       `yaml:"backend_url" validate:"required,url"`
	LogLevel   string       `yaml:"log_level"`
	PrettyLogs bool         `yaml:"pretty_logs"`
	Warmup     WarmupConfig `yaml:"warmup"`
}

func defaultProxyConfig() *ProxyConfig {
	return &ProxyConfig{
		Port:       "8080",
		BackendURL: "http://localhost:8000",
		LogLevel:   "info",
	}
}

// LoadConfig builds the configuration. A .env file is loaded when present,
// then the YAML file named by PROFILE_PROXY_CONFIG (if any), then plain
// environment variables override individual fields.
func LoadConfig() (*ProxyConfig, error) {
	godotenv.Load()

	cfg := defaultProxyConfig()

	if path := os.Getenv("PROFILE_PROXY_CONFIG"); path != "" {
		if err := loadConfigFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(path string, cfg *ProxyConfig) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables $
	expanded := os.ExpandEnv(string(content))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *ProxyConfig) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PRETTY_LOGS"); v != "" {
		cfg.PrettyLogs = v == "true"
	}
	if v := os.Getenv("WARMUP_MAX_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Warmup.MaxConcurrency = n
		}
	}
}
