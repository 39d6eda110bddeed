package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Module = fx.Provide(NewConfig)

type IConfig interface {
	Get(key string) interface{}
	GetBool(key string) bool
	GetInt(key string) int
	GetInt64(key string) int64
	GetString(key string) string
	GetStringSlice(key string) []string
	GetDuration(key string) time.Duration
	Validate() error
}

type config struct {
	cfg *viper.Viper
}

// required is the subset of settings the bot cannot start without.
type required struct {
	BotToken      string `validate:"required"`
	CatalogAPIKey string `validate:"required"`
	CatalogURL    string `validate:"required,url"`
	DatabaseDNS   string `validate:"required"`
	CacheBackend  string `validate:"oneof=memory redis"`
}

func NewConfig() IConfig {
	_ = godotenv.Load()
	return newFromViper(viper.New())
}

func newFromViper(cfg *viper.Viper) IConfig {
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("server.port", ":8080")
	cfg.SetDefault("server.cors_origins", []string{"*"})
	cfg.SetDefault("bot.pool_size", 10)
	cfg.SetDefault("catalog.base_url", "https://api.spoonacular.com")
	cfg.SetDefault("catalog.timeout", 10*time.Second)
	cfg.SetDefault("search.max_results", 10)
	cfg.SetDefault("cache.backend", "memory")
	cfg.SetDefault("redis.prefix", "gastrobot")
	cfg.SetDefault("log.level", "info")

	_ = cfg.BindEnv("server.port", "SERVICE_HTTP_PORT")
	_ = cfg.BindEnv("server.cors_origins", "SERVICE_CORS_ORIGINS")
	_ = cfg.BindEnv("bot.token", "BOT_TOKEN")
	_ = cfg.BindEnv("bot.pool_size", "BOT_POOL_SIZE")
	_ = cfg.BindEnv("catalog.base_url", "CATALOG_BASE_URL")
	_ = cfg.BindEnv("catalog.api_key", "CATALOG_API_KEY")
	_ = cfg.BindEnv("catalog.timeout", "CATALOG_TIMEOUT")
	_ = cfg.BindEnv("search.max_results", "SEARCH_MAX_RESULTS")
	_ = cfg.BindEnv("database.dns", "DATABASE_DNS")
	_ = cfg.BindEnv("database.migration", "DATABASE_MIGRATION")
	_ = cfg.BindEnv("database.host", "POSTGRES_HOST")
	_ = cfg.BindEnv("database.user", "POSTGRES_USER")
	_ = cfg.BindEnv("database.password", "POSTGRES_PASSWORD")
	_ = cfg.BindEnv("database.dbname", "POSTGRES_DATABASE")
	_ = cfg.BindEnv("database.port", "POSTGRES_PORT")
	_ = cfg.BindEnv("database.pool_max_conns", "POSTGRES_MAX_CONNECTION")
	_ = cfg.BindEnv("database.pool_max_conn_lifetime", "POSTGRES_POOL_MAX_CONN_LIFETIME")
	_ = cfg.BindEnv("cache.backend", "CACHE_BACKEND")
	_ = cfg.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = cfg.BindEnv("redis.addrs", "REDIS_ADDRS")
	_ = cfg.BindEnv("redis.prefix", "REDIS_PREFIX")
	_ = cfg.BindEnv("log.level", "LOG_LEVEL")
	_ = cfg.BindEnv("log.file", "LOG_FILE")

	if addrs := os.Getenv("REDIS_ADDRS"); addrs != "" {
		cfg.Set("redis.addrs", strings.Split(addrs, ","))
	}
	if origins := os.Getenv("SERVICE_CORS_ORIGINS"); origins != "" {
		cfg.Set("server.cors_origins", strings.Split(origins, ","))
	}

	if cfg.GetString("database.dns") == "" {
		if dsn := BuildPostgresDSNFromViper(cfg); dsn != "" {
			cfg.Set("database.dns", dsn)
		}
	}
	if cfg.GetString("database.migration") == "" {
		if url := BuildPostgresURLFromViper(cfg); url != "" {
			cfg.Set("database.migration", url)
		}
	}

	return &config{cfg: cfg}
}

func (c *config) Validate() error {
	r := required{
		BotToken:      c.cfg.GetString("bot.token"),
		CatalogAPIKey: c.cfg.GetString("catalog.api_key"),
		CatalogURL:    c.cfg.GetString("catalog.base_url"),
		DatabaseDNS:   c.cfg.GetString("database.dns"),
		CacheBackend:  c.cfg.GetString("cache.backend"),
	}
	if err := validator.New().Struct(r); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *config) Get(key string) interface{} {
	return c.cfg.Get(key)
}

func (c *config) GetBool(key string) bool {
	return c.cfg.GetBool(key)
}

func (c *config) GetInt(key string) int {
	return c.cfg.GetInt(key)
}

func (c *config) GetInt64(key string) int64 {
	return c.cfg.GetInt64(key)
}

func (c *config) GetString(key string) string {
	return c.cfg.GetString(key)
}

func (c *config) GetStringSlice(key string) []string {
	return c.cfg.GetStringSlice(key)
}

func (c *config) GetDuration(key string) time.Duration {
	return c.cfg.GetDuration(key)
}

func BuildPostgresDSNFromViper(v *viper.Viper) string {
	user := v.GetString("database.user")
	password := v.GetString("database.password")
	dbname := v.GetString("database.dbname")
	host := v.GetString("database.host")
	port := v.GetString("database.port")
	poolMaxConns := v.GetInt("database.pool_max_conns")
	if poolMaxConns == 0 {
		poolMaxConns = 10
	}
	poolLifetime := v.GetString("database.pool_max_conn_lifetime")
	if poolLifetime == "" {
		poolLifetime = "1h30m"
	}

	if user == "" && host == "" && dbname == "" {
		return ""
	}

	parts := []string{}
	if user != "" {
		parts = append(parts, "user="+user)
	}
	if password != "" {
		parts = append(parts, "password="+password)
	}
	if dbname != "" {
		parts = append(parts, "dbname="+dbname)
	}
	if host != "" {
		parts = append(parts, "host="+host)
	}
	if port != "" {
		parts = append(parts, "port="+port)
	}
	parts = append(parts, fmt.Sprintf("pool_max_conns=%d", poolMaxConns))
	parts = append(parts, fmt.Sprintf("pool_max_conn_lifetime=%s", poolLifetime))

	return strings.Join(parts, " ")
}

func BuildPostgresURLFromViper(v *viper.Viper) string {
	user := v.GetString("database.user")
	password := v.GetString("database.password")
	host := v.GetString("database.host")
	port := v.GetString("database.port")
	if port == "" {
		port = "5432"
	}
	dbname := v.GetString("database.dbname")

	if user == "" || host == "" || dbname == "" {
		return ""
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user,
		password,
		host,
		port,
		dbname,
	)
}
