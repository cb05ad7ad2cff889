package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Relay     RelayConfig     `mapstructure:"relay"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	App       AppConfig       `mapstructure:"app"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DBConfig holds database specific configuration
type DBConfig struct {
	Driver     string `mapstructure:"driver"` // postgres or sqlite
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"`
	SSLMode    string `mapstructure:"sslmode"`
	SQLitePath string `mapstructure:"sqlite_path"`
	MaxConns   int32  `mapstructure:"max_conns"`
	MinConns   int32  `mapstructure:"min_conns"`
	Migrate    bool   `mapstructure:"migrate"`
}

// RedisConfig holds the apply gate store settings. An empty Addr selects the in-memory gate.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	ApplyGateTTL time.Duration `mapstructure:"apply_gate_ttl"`
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig describes the identity provider's session tokens.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

// RelayConfig configures both the relay client and the relay endpoints.
type RelayConfig struct {
	BaseURL          string        `mapstructure:"base_url"`
	ApplicationPath  string        `mapstructure:"application_path"`
	VerificationPath string        `mapstructure:"verification_path"`
	Timeout          time.Duration `mapstructure:"timeout"`
	APIKey           string        `mapstructure:"api_key"`      // sent by the client
	APIKeyHash       string        `mapstructure:"api_key_hash"` // bcrypt, checked by the endpoints
}

type SMTPConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	FromName    string `mapstructure:"from_name"`
	FromAddress string `mapstructure:"from_address"`
	ReplyTo     string `mapstructure:"reply_to"`
	TLSPolicy   string `mapstructure:"tls_policy"` // mandatory, opportunistic, none
}

type AppConfig struct {
	PublicURL string `mapstructure:"public_url"`
}

type RateLimitConfig struct {
	ApplyPerMinute int `mapstructure:"apply_per_minute"`
	Burst          int `mapstructure:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app/config")
	v.AddConfigPath("/app")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Info().Msg("Config file not found, using defaults and environment variables.")
		} else {
			log.Warn().Err(err).Msg("Error reading config file")
		}
	}

	v.SetEnvPrefix("API") // e.g. API_SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Int("port", cfg.Server.Port).
		Str("db_driver", cfg.DB.Driver).
		Strs("allowed_origins", cfg.CORS.AllowedOrigins).
		Bool("redis", cfg.Redis.Addr != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "remote_jobs")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.sqlite_path", "remote_jobs.db")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.migrate", true)

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.apply_gate_ttl", 24*time.Hour)

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})

	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "authenticated")

	v.SetDefault("relay.base_url", "http://localhost:8080")
	v.SetDefault("relay.application_path", "/api/v1/relay/job-application-email")
	v.SetDefault("relay.verification_path", "/api/v1/relay/verification-email")
	v.SetDefault("relay.timeout", 10*time.Second)

	v.SetDefault("smtp.host", "smtp.zoho.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from_name", "Ravenz Research")
	v.SetDefault("smtp.tls_policy", "mandatory")

	v.SetDefault("app.public_url", "http://localhost:3000")

	v.SetDefault("rate_limit.apply_per_minute", 10)
	v.SetDefault("rate_limit.burst", 5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}

// applyEnvOverrides applies the unprefixed variables used by deployments (highest priority).
func applyEnvOverrides(cfg *Config) {
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		cfg.DB.Driver = driver
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.DB.Port = port
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.DB.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if pass := os.Getenv("SMTP_PASSWORD"); pass != "" {
		cfg.SMTP.Password = pass
	}
	if url := os.Getenv("RELAY_URL"); url != "" {
		cfg.Relay.BaseURL = url
	}
	// Comma-separated list
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.CORS.AllowedOrigins {
			cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}
}

// Validate reports configuration that would make the server unusable.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("config: unknown database driver %q", c.DB.Driver)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("config: auth.jwt_secret is required")
	}
	return nil
}

// PostgresDSN builds the pgx connection string.
func (c DBConfig) PostgresDSN() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, sslmode)
}
