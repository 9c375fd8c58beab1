package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// Database settings
	DBHost     string `mapstructure:"db_host"`
	DBPort     int    `mapstructure:"db_port"`
	DBName     string `mapstructure:"db_name"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBSSLMode  string `mapstructure:"db_sslmode"`

	// Optional API settings
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	ConfigPath string
}

const (
	DefaultConfigPath = "/etc/wigest/config.yml"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBName     = "wigest"
	DefaultDBUser     = "postgres"
	DefaultDBSSLMode  = "disable"
	DefaultAPIHost    = "0.0.0.0"
	DefaultAPIPort    = 8000
)

func Load(configPath string) (*Config, error) {
	// A local .env file just seeds the environment before viper reads it
	_ = godotenv.Load()

	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("db_host", DefaultDBHost)
	viper.SetDefault("db_port", DefaultDBPort)
	viper.SetDefault("db_name", DefaultDBName)
	viper.SetDefault("db_user", DefaultDBUser)
	viper.SetDefault("db_sslmode", DefaultDBSSLMode)
	viper.SetDefault("api_host", DefaultAPIHost)
	viper.SetDefault("api_port", DefaultAPIPort)

	// Allow environment variable overrides
	viper.AutomaticEnv()
	viper.SetEnvPrefix("WIGEST")

	// The config file is optional: defaults plus environment variables are
	// enough for a development setup.
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBHost == "" {
		return fmt.Errorf("db_host is required")
	}

	if c.DBPort <= 0 || c.DBPort > 65535 {
		return fmt.Errorf("db_port must be between 1 and 65535")
	}

	if c.DBName == "" {
		return fmt.Errorf("db_name is required")
	}

	if c.DBUser == "" {
		return fmt.Errorf("db_user is required")
	}

	switch c.DBSSLMode {
	case "disable", "allow", "prefer", "require", "verify-ca", "verify-full":
	default:
		return fmt.Errorf("db_sslmode is invalid: %s", c.DBSSLMode)
	}

	return nil
}

// DSN builds the PostgreSQL connection string from the discrete settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("WIGEST_DEV_MODE") == "1"
}
