package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := newFromViper(viper.New())

	assert.Equal(t, ":8080", cfg.GetString("server.port"))
	assert.Equal(t, 10, cfg.GetInt("bot.pool_size"))
	assert.Equal(t, "https://api.spoonacular.com", cfg.GetString("catalog.base_url"))
	assert.Equal(t, 10*time.Second, cfg.GetDuration("catalog.timeout"))
	assert.Equal(t, "memory", cfg.GetString("cache.backend"))
	assert.Equal(t, 10, cfg.GetInt("search.max_results"))
}

func TestEnvBindingAndDerivedDSN(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("CATALOG_API_KEY", "key")
	t.Setenv("CATALOG_TIMEOUT", "3s")
	t.Setenv("SEARCH_MAX_RESULTS", "5")
	t.Setenv("POSTGRES_USER", "bot")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DATABASE", "gastro")
	t.Setenv("REDIS_ADDRS", "r1:6379,r2:6379")

	cfg := newFromViper(viper.New())

	assert.Equal(t, "123:abc", cfg.GetString("bot.token"))
	assert.Equal(t, 3*time.Second, cfg.GetDuration("catalog.timeout"))
	assert.Equal(t, 5, cfg.GetInt("search.max_results"))
	assert.Equal(t, "user=bot password=secret dbname=gastro host=db pool_max_conns=10 pool_max_conn_lifetime=1h30m", cfg.GetString("database.dns"))
	assert.Equal(t, "postgres://bot:secret@db:5432/gastro?sslmode=disable", cfg.GetString("database.migration"))
	assert.Equal(t, []string{"r1:6379", "r2:6379"}, cfg.GetStringSlice("redis.addrs"))
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing token", env: map[string]string{"CATALOG_API_KEY": "k", "DATABASE_DNS": "host=db"}},
		{name: "missing api key", env: map[string]string{"BOT_TOKEN": "t", "DATABASE_DNS": "host=db"}},
		{name: "bad backend", env: map[string]string{"BOT_TOKEN": "t", "CATALOG_API_KEY": "k", "DATABASE_DNS": "host=db", "CACHE_BACKEND": "memcached"}},
		{name: "bad catalog url", env: map[string]string{"BOT_TOKEN": "t", "CATALOG_API_KEY": "k", "DATABASE_DNS": "host=db", "CATALOG_BASE_URL": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Error(t, newFromViper(viper.New()).Validate())
		})
	}
}
