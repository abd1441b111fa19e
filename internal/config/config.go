// Package config loads the dealerdesk server configuration from a YAML file,
// .env files and the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config is the server configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr" validate:"required"`
	} `yaml:"server"`

	API struct {
		BaseURL string        `yaml:"base_url" validate:"required,url"`
		Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	} `yaml:"api"`

	Session struct {
		// CookieKey is the base64 master key of the cookie codecs. A random
		// key is used when it is empty.
		CookieKey     string        `yaml:"cookie_key" validate:"omitempty,base64"`
		CookieDomain  string        `yaml:"cookie_domain"`
		Timeout       time.Duration `yaml:"timeout" validate:"gt=0"`
		BootstrapWait time.Duration `yaml:"bootstrap_wait" validate:"gt=0"`
	} `yaml:"session"`

	Storage struct {
		Driver string `yaml:"driver" validate:"oneof=memory redis postgres"`
		Redis  struct {
			Addr     string `yaml:"addr"`
			DB       int    `yaml:"db" validate:"gte=0"`
			Password string `yaml:"password"`
		} `yaml:"redis"`
		Postgres struct {
			DSN        string        `yaml:"dsn"`
			PruneEvery time.Duration `yaml:"prune_every" validate:"gt=0"`
		} `yaml:"postgres"`
	} `yaml:"storage"`

	SMS struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"sms"`
}

// LoadEnvFiles loads .env files into the environment. Variables that are
// already set win.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Wrap(err, "godotenv.Load()")
	}

	return nil
}

// Load reads the YAML file at path, when path is not empty, then applies the
// DEALERDESK_* environment variables and validates the result.
func Load(path string) (*Config, error) {
	c := defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "os.ReadFile()")
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	}

	if err := c.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func defaults() *Config {
	c := &Config{}
	c.Server.Addr = ":8080"
	c.API.Timeout = 30 * time.Second
	c.Session.Timeout = 12 * time.Hour
	c.Session.BootstrapWait = 3 * time.Second
	c.Storage.Driver = DriverMemory
	c.Storage.Postgres.PruneEvery = 15 * time.Minute

	return c
}

func (c *Config) validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	switch c.Storage.Driver {
	case DriverRedis:
		if c.Storage.Redis.Addr == "" {
			return errors.New("invalid configuration: storage.redis.addr is required for the redis driver")
		}
	case DriverPostgres:
		if c.Storage.Postgres.DSN == "" {
			return errors.New("invalid configuration: storage.postgres.dsn is required for the postgres driver")
		}
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	strs := map[string]*string{
		"DEALERDESK_ADDR":           &c.Server.Addr,
		"DEALERDESK_API_BASE_URL":   &c.API.BaseURL,
		"DEALERDESK_COOKIE_KEY":     &c.Session.CookieKey,
		"DEALERDESK_COOKIE_DOMAIN":  &c.Session.CookieDomain,
		"DEALERDESK_STORAGE_DRIVER": &c.Storage.Driver,
		"DEALERDESK_REDIS_ADDR":     &c.Storage.Redis.Addr,
		"DEALERDESK_REDIS_PASSWORD": &c.Storage.Redis.Password,
		"DEALERDESK_POSTGRES_DSN":   &c.Storage.Postgres.DSN,
		"DEALERDESK_SMS_API_KEY":    &c.SMS.APIKey,
	}
	for key, dst := range strs {
		if v, ok := getEnvStr(key); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"DEALERDESK_API_TIMEOUT":          &c.API.Timeout,
		"DEALERDESK_SESSION_TIMEOUT":      &c.Session.Timeout,
		"DEALERDESK_BOOTSTRAP_WAIT":       &c.Session.BootstrapWait,
		"DEALERDESK_POSTGRES_PRUNE_EVERY": &c.Storage.Postgres.PruneEvery,
	}
	for key, dst := range durations {
		v, ok := getEnvStr(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "%s", key)
		}
		*dst = d
	}

	if v, ok := getEnvStr("DEALERDESK_REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "DEALERDESK_REDIS_DB")
		}
		c.Storage.Redis.DB = db
	}

	return nil
}

func getEnvStr(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)

	return v, v != ""
}
