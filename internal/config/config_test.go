package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_PATH", "PORT", "ADMIN_USER", "ADMIN_PASSWORD",
		"FINANCE_DB_PATH", "FINANCE_PORT", "FINANCE_LOG_LEVEL",
		"FINANCE_ADMIN_USER", "FINANCE_ADMIN_PASSWORD",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// Keep godotenv from picking up a developer's .env.
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "finance.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINANCE_DB_PATH", "/tmp/ledger.db")
	t.Setenv("FINANCE_LOG_LEVEL", "debug")
	t.Setenv("PORT", "9000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ledger.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoadPrefixedWinsOverPlain(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "plain.db")
	t.Setenv("FINANCE_DB_PATH", "prefixed.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "prefixed.db", cfg.DBPath)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("FINANCE_PORT=7070\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FINANCE_PORT") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "finance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: file.db\nlog_level: warn\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr []string
	}{
		{
			name: "valid",
			cfg:  Config{DBPath: "x.db", Port: "8080", LogLevel: "info"},
		},
		{
			name:    "bad port",
			cfg:     Config{DBPath: "x.db", Port: "http", LogLevel: "info"},
			wantErr: []string{"invalid port 'http'"},
		},
		{
			name:    "port out of range",
			cfg:     Config{DBPath: "x.db", Port: "70000", LogLevel: "info"},
			wantErr: []string{"between 1 and 65535"},
		},
		{
			name:    "everything wrong",
			cfg:     Config{Port: "0", LogLevel: "loud", AdminUser: "root"},
			wantErr: []string{"database path", "invalid port 0", "invalid log level 'loud'", "must be set together"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
