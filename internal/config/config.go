package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"time"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

type Environment string

const (
	Production  Environment = "prod"
	Development Environment = "dev"
)

func (e *Environment) SetValue(s string) error {
	*e = Environment(s)
	if *e != Production && *e != Development {
		return configNotLoadedErr(`only "prod" and "dev" environments are allowed`)
	}
	return nil
}

type Config struct {
	App struct {
		Env      Environment `yaml:"env" env:"ENV" env-required:""`
		Timezone string      `yaml:"timezone" env:"TIMEZONE" env-default:"Local"`
	} `yaml:"app" env-prefix:"APP_" env-required:""`

	Server struct {
		Host string `yaml:"host" env:"HOST" env-default:"localhost"`
		Port int    `yaml:"port" env:"PORT" env-default:"8080"`
	} `yaml:"server" env-prefix:"SERVER_"`

	Backend struct {
		BaseURL       string        `yaml:"base_url" env:"BASE_URL" env-default:"http://localhost:8000/api"`
		Timeout       time.Duration `yaml:"timeout" env:"TIMEOUT" env-default:"10s"`
		SessionCookie string        `yaml:"session_cookie" env:"SESSION_COOKIE" env-default:"session_id"`

		Breaker struct {
			MaxRequests      uint32        `yaml:"max_requests" env:"MAX_REQUESTS" env-default:"1"`
			Interval         time.Duration `yaml:"interval" env:"INTERVAL" env-default:"1m"`
			Timeout          time.Duration `yaml:"timeout" env:"TIMEOUT" env-default:"30s"`
			FailureThreshold uint32        `yaml:"failure_threshold" env:"FAILURE_THRESHOLD" env-default:"5"`
		} `yaml:"breaker" env-prefix:"BREAKER_"`
	} `yaml:"backend" env-prefix:"BACKEND_"`

	location *time.Location
}

// Location is the zone form dates without an offset are read in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func Load(filePath string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(filePath, cfg); err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}

	// values read from yaml bypass SetValue
	if err := cfg.App.Env.SetValue(string(cfg.App.Env)); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, configNotLoadedErr("invalid timezone %q: %w", cfg.App.Timezone, err)
	}
	cfg.location = loc

	return cfg, nil
}

func MustLoad(filePath string) *Config {
	cfg, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	return cfg
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}
