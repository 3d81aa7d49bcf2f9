package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]string) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]string{
		"DB_DSN": "host=localhost dbname=apper",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"de", "fr", "gb", "at", "ch"}, cfg.Health.Markets)
	assert.Empty(t, cfg.Auth.AccessSecret)
	assert.False(t, cfg.IsProduction())
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]string{
		"APP_ENV":              "production",
		"HTTP_PORT":            "9090",
		"DB_DRIVER":            "SQLite",
		"DB_DSN":               "file:apper.db",
		"DB_CONN_MAX_LIFETIME": "5m",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example ,",
		"RATE_LIMIT_RPS":       "2.5",
		"HEALTH_MARKETS":       "de,it",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 2, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"de", "it"}, cfg.Health.Markets)
}

func TestFromViper_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"missing dsn", map[string]string{}},
		{"unknown driver", map[string]string{"DB_DSN": "x", "DB_DRIVER": "mysql"}},
		{"bad lifetime", map[string]string{"DB_DSN": "x", "DB_CONN_MAX_LIFETIME": "forever"}},
		{"negative rps", map[string]string{"DB_DSN": "x", "RATE_LIMIT_RPS": "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newViper(tt.values))
			assert.Error(t, err)
		})
	}
}
