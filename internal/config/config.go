package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Server struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"`
	Gzip bool   `mapstructure:"gzip"`
	Live bool   `mapstructure:"live"`
}

type Log struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type Site struct {
	// Year printed in the footer. Zero means the current year.
	Year int `mapstructure:"year"`
}

type Export struct {
	Dir string `mapstructure:"dir"`
}

type Config struct {
	Server Server `mapstructure:"server"`
	Log    Log    `mapstructure:"log"`
	Site   Site   `mapstructure:"site"`
	Export Export `mapstructure:"export"`
}

var ErrInvalid = errors.New("invalid config")

const envPrefix = "SEBICAS"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", gin.ReleaseMode)
	v.SetDefault("server.gzip", true)
	v.SetDefault("server.live", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("site.year", 0)
	v.SetDefault("export.dir", "dist")
}

// Get loads .env files, then an optional config file named "config" from the
// working directory, then SEBICAS_* environment overrides.
func Get() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	return load(v)
}

// FromFile loads an explicit config file instead of searching for one.
func FromFile(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// PaaS hosts hand out the port through PORT.
	if port := os.Getenv("PORT"); port != "" && os.Getenv(envPrefix+"_SERVER_ADDR") == "" {
		conf.Server.Addr = ":" + port
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) Validate() error {
	var errs []string

	if c.Server.Addr == "" {
		errs = append(errs, "server.addr is empty")
	}

	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Sprintf("server.mode %q is not one of debug, release, test", c.Server.Mode))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	if c.Site.Year < 0 {
		errs = append(errs, "site.year is negative")
	}

	if c.Export.Dir == "" {
		errs = append(errs, "export.dir is empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

// FooterYear resolves the configured year against now.
func (c *Config) FooterYear(now time.Time) int {
	if c.Site.Year > 0 {
		return c.Site.Year
	}
	return now.Year()
}
