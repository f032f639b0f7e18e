package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	lenv "github.com/garrettladley/lyra/internal/env"
	"github.com/garrettladley/lyra/internal/validator"
	"github.com/garrettladley/lyra/internal/xslog"
)

const DefaultAPIURL = "http://localhost:8000"

// Elements lists every element id the terminal host can render.
var Elements = []string{
	"dashboard-container",
	"quick-generate-btn",
	"pending-approvals-btn",
	"pending-approvals-modal",
	"pending-approvals-modal .approvals-list",
	"upcoming-posts",
	"calendar-ticker",
	"total-content",
	"this-week",
	"approved-content",
	"approval-rate",
	"pending-count",
	"platforms-active",
}

type Config struct {
	APIURL            string           `env:"LYRA_API_URL" yaml:"api_url"`
	StoreDSN          string           `env:"LYRA_STORE_DSN" yaml:"store_dsn"`
	RefreshInterval   time.Duration    `env:"LYRA_REFRESH_INTERVAL" yaml:"refresh_interval"`
	CountdownInterval time.Duration    `env:"LYRA_COUNTDOWN_INTERVAL" yaml:"countdown_interval"`
	DaysAhead         int              `env:"LYRA_DAYS_AHEAD" yaml:"days_ahead"`
	RequestTimeout    time.Duration    `env:"LYRA_REQUEST_TIMEOUT" yaml:"request_timeout"`
	Widgets           []string         `env:"LYRA_WIDGETS" envSeparator:"," yaml:"widgets"`
	LogFile           string           `env:"LYRA_LOG_FILE" yaml:"log_file"`
	Environment       lenv.Environment `env:"LYRA_ENV" yaml:"env"`
	LogLevel          xslog.Level      `env:"LOG_LEVEL" yaml:"log_level"`
}

var _ validator.Validator = (*Config)(nil)

func Defaults() Config {
	return Config{
		APIURL:            DefaultAPIURL,
		RefreshInterval:   5 * time.Minute,
		CountdownInterval: time.Minute,
		DaysAhead:         7,
		RequestTimeout:    15 * time.Second,
		Widgets:           slices.Clone(Elements),
		Environment:       lenv.Development,
		LogLevel:          xslog.Default,
	}
}

// Read layers defaults, the optional YAML file at path, then the environment.
func Read(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	if err := validator.Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() map[string]string {
	errs := make(map[string]string)

	if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs["api_url"] = "must be an absolute URL"
	}
	if c.RefreshInterval <= 0 {
		errs["refresh_interval"] = "must be positive"
	}
	if c.CountdownInterval <= 0 {
		errs["countdown_interval"] = "must be positive"
	}
	if c.DaysAhead < 1 {
		errs["days_ahead"] = "must be at least 1"
	}
	if c.RequestTimeout <= 0 {
		errs["request_timeout"] = "must be positive"
	}
	for _, w := range c.Widgets {
		if !slices.Contains(Elements, w) {
			errs["widgets"] = fmt.Sprintf("unknown element %q", w)
			break
		}
	}
	if !c.Environment.Valid() {
		errs["env"] = "must be development or production"
	}

	return errs
}
