package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	// Required
	JWTSecretKey string `mapstructure:"jwt_secret_key"`

	// Optional server settings
	ListenHost string `mapstructure:"listen_host"`
	ListenPort int    `mapstructure:"listen_port"`

	// Optional storage settings
	DBPath string `mapstructure:"db_path"`

	// Optional JWT settings
	JWTAlgorithm string `mapstructure:"jwt_algorithm"`

	// Optional asset settings
	TemplateGlob string `mapstructure:"template_glob"`
	StaticDir    string `mapstructure:"static_dir"`

	// Optional cookie settings
	SecureCookies bool `mapstructure:"secure_cookies"`

	// Optional logging settings
	LogLevel string `mapstructure:"log_level"`

	ConfigPath string
}

const (
	DefaultConfigPath   = "config.yml"
	DefaultListenHost   = "0.0.0.0"
	DefaultListenPort   = 3000
	DefaultDBPath       = "microblog.db"
	DefaultJWTAlgorithm = "HS256"
	DefaultTemplateGlob = "web/templates/*.html"
	DefaultStaticDir    = "web/static"
	DefaultLogLevel     = "info"
)

func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	v.SetDefault("listen_host", DefaultListenHost)
	v.SetDefault("listen_port", DefaultListenPort)
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("jwt_secret_key", "")
	v.SetDefault("jwt_algorithm", DefaultJWTAlgorithm)
	v.SetDefault("template_glob", DefaultTemplateGlob)
	v.SetDefault("static_dir", DefaultStaticDir)
	v.SetDefault("secure_cookies", false)
	v.SetDefault("log_level", DefaultLogLevel)

	// Allow environment variable overrides
	v.AutomaticEnv()
	v.SetEnvPrefix("MICROBLOG")

	if err := v.ReadInConfig(); err != nil {
		// The default config file is optional; an explicitly passed one
		// is not.
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return fmt.Errorf("jwt_secret_key is required")
	}

	switch c.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("jwt_algorithm must be HS256, HS384 or HS512")
	}

	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ListenHost, c.ListenPort)
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("MICROBLOG_DEV_MODE") == "1"
}
