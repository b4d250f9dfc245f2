// Package config resolves runtime settings from an optional .env file,
// an optional YAML config file and the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FINANCE_DB_PATH.
const EnvPrefix = "FINANCE"

// Config holds runtime settings shared by the binaries.
type Config struct {
	DBPath        string `mapstructure:"db_path"`
	Port          string `mapstructure:"port"`
	LogLevel      string `mapstructure:"log_level"`
	AdminUser     string `mapstructure:"admin_user"`
	AdminPassword string `mapstructure:"admin_password"`
}

// Load reads .env (if present), then configFile (if non-empty), then the
// environment. The unprefixed DB_PATH and PORT variables are honoured too.
func Load(configFile string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("db_path", "finance.db")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("admin_user", "")
	v.SetDefault("admin_password", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"db_path":        "DB_PATH",
		"port":           "PORT",
		"admin_user":     "ADMIN_USER",
		"admin_password": "ADMIN_PASSWORD",
	} {
		if err := v.BindEnv(key, EnvPrefix+"_"+env, env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "database path cannot be empty")
	}
	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}
	if _, err := c.Level(); err != nil {
		problems = append(problems, err.Error())
	}
	if (c.AdminUser == "") != (c.AdminPassword == "") {
		problems = append(problems, "admin user and admin password must be set together")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level '%s'", c.LogLevel)
	}
	return level, nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
