package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the console configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Backend struct {
		BaseURL         string        `yaml:"base_url" env:"BACKEND_BASE_URL"`
		Timeout         time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT"`
		StudentsPath    string        `yaml:"students_path" env:"BACKEND_STUDENTS_PATH"`
		CoursesPath     string        `yaml:"courses_path" env:"BACKEND_COURSES_PATH"`
		LoginPath       string        `yaml:"login_path" env:"BACKEND_LOGIN_PATH"`
		ReconcileInline bool          `yaml:"reconcile_inline" env:"BACKEND_RECONCILE_INLINE"`
	} `yaml:"backend"`

	Session struct {
		Secret     string        `yaml:"secret" env:"SESSION_SECRET"`
		CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		Lifetime   time.Duration `yaml:"lifetime" env:"SESSION_LIFETIME"`
		Secure     bool          `yaml:"secure" env:"SESSION_SECURE"`
		Issuer     string        `yaml:"issuer" env:"SESSION_ISSUER"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional YAML file, then applies
// environment overrides and validates the result.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Backend.BaseURL = "http://localhost:9090/api"
	config.Backend.Timeout = 10 * time.Second
	config.Backend.StudentsPath = "students"
	config.Backend.CoursesPath = "courses"
	config.Backend.LoginPath = "auth/login"

	config.Session.CookieName = "campus_session"
	config.Session.Lifetime = 8 * time.Hour
	config.Session.Issuer = "campusadmin"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is usable
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Backend.BaseURL) == "" {
		return fmt.Errorf("backend base URL is required")
	}
	u, err := url.Parse(config.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend base URL %q must be absolute", config.Backend.BaseURL)
	}

	if config.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}
	if config.Session.Lifetime <= 0 {
		return fmt.Errorf("session lifetime must be positive")
	}
	if config.Backend.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
