package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./content", cfg.Content.Dir)
	assert.Equal(t, ".json", cfg.Content.Extension)
	assert.Equal(t, SourceFS, cfg.Content.Source)
	assert.Equal(t, 8, cfg.Content.LoadConcurrency)
	assert.False(t, cfg.UsesDatabase())
	assert.True(t, cfg.Content.Cache)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONTENT_DIR", "/srv/content")
	t.Setenv("CONTENT_EXTENSION", "json")
	t.Setenv("CONTENT_SOURCE", "DB")
	t.Setenv("CONTENT_ENSURE_DIRS", "true")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("DB_NAME", "site")
	t.Setenv("CONTENT_CACHE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/srv/content", cfg.Content.Dir)
	assert.Equal(t, ".json", cfg.Content.Extension)
	assert.True(t, cfg.UsesDatabase())
	assert.True(t, cfg.Content.EnsureDirs)
	assert.False(t, cfg.Content.Cache)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Contains(t, cfg.Database.GetDSN(), "dbname=site")
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CONTENT_LOAD_CONCURRENCY", "many")
	t.Setenv("SERVER_WRITE_TIMEOUT", "forever")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Content.LoadConcurrency)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown source", mutate: func(c *Config) { c.Content.Source = "s3" }, wantErr: "CONTENT_SOURCE"},
		{name: "empty dir", mutate: func(c *Config) { c.Content.Dir = "" }, wantErr: "CONTENT_DIR"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Content.LoadConcurrency = 0 }, wantErr: "CONTENT_LOAD_CONCURRENCY"},
		{
			name: "db source without host",
			mutate: func(c *Config) {
				c.Content.Source = SourceDB
				c.Database.Host = ""
			},
			wantErr: "DB_HOST",
		},
		{
			name:   "fs source ignores database settings",
			mutate: func(c *Config) { c.Database.Host = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Content:  ContentConfig{Dir: "content", Extension: ".json", Source: SourceFS, LoadConcurrency: 4},
				Database: DatabaseConfig{Host: "localhost", Name: "site"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
