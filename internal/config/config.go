package config

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

type TicketsConfig struct {
	Secret   string        `mapstructure:"secret"`
	Lifetime time.Duration `mapstructure:"lifetime"`
}

type SessionsConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type GameConfig struct {
	Preset string `mapstructure:"preset"`
}

type Config struct {
	Mode     string         `mapstructure:"mode"`
	Addr     string         `mapstructure:"addr"`
	Domain   string         `mapstructure:"domain"`
	Log      LogConfig      `mapstructure:"log"`
	Tickets  TicketsConfig  `mapstructure:"tickets"`
	Sessions SessionsConfig `mapstructure:"sessions"`
	Cors     CorsConfig     `mapstructure:"cors"`
	Game     GameConfig     `mapstructure:"game"`
}

const EnvPrefix = "MINES"

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "development")
	v.SetDefault("addr", ":8080")
	v.SetDefault("domain", "")
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("tickets.secret", "")
	v.SetDefault("tickets.lifetime", 24*time.Hour)
	v.SetDefault("sessions.ttl", time.Hour)
	v.SetDefault("sessions.sweep_interval", time.Minute)
	v.SetDefault("cors.allowed_origins", []string{})
	v.SetDefault("game.preset", "beginner")
}

// Load reads the config file at path, if any, and applies MINES_*
// environment overrides on top of the defaults (MINES_TICKETS_SECRET for
// tickets.secret and so on).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case "development", "production":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Production() && c.Tickets.Secret == "" {
		return errors.New("tickets.secret must be set in production")
	}
	if c.Tickets.Lifetime <= 0 {
		return errors.New("tickets.lifetime must be positive")
	}
	if c.Sessions.TTL <= 0 || c.Sessions.SweepInterval <= 0 {
		return errors.New("sessions.ttl and sessions.sweep_interval must be positive")
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":                    c.Mode,
		"addr":                    c.Addr,
		"domain":                  c.Domain,
		"log_level":               c.Log.Level,
		"log_file":                c.Log.File,
		"tickets_lifetime":        c.Tickets.Lifetime.String(),
		"sessions_ttl":            c.Sessions.TTL.String(),
		"sessions_sweep_interval": c.Sessions.SweepInterval.String(),
		"cors_allowed_origins":    c.Cors.AllowedOrigins,
		"game_preset":             c.Game.Preset,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) HttpCookieSameSite() http.SameSite {
	if c.Development() {
		return http.SameSiteNoneMode
	} else {
		return http.SameSiteStrictMode
	}
}
