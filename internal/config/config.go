// Package config loads trex settings from flags, environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TREX_API_URL.
const EnvPrefix = "TREX"

// Setting keys. Flags with the same name in kebab case are bound to them.
const (
	KeyAPIURL   = "api_url"
	KeyTimeout  = "timeout"
	KeyColor    = "color"
	KeyDebugLog = "debug_log"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	defaultAPIURL  = "https://www.trassenfinder.de/api/web"
	defaultTimeout = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	APIURL   string        `mapstructure:"api_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Color    string        `mapstructure:"color"`
	DebugLog string        `mapstructure:"debug_log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIURL:  defaultAPIURL,
		Timeout: defaultTimeout,
		Color:   ColorAuto,
	}
}

// Load merges defaults, the config file, TREX_* environment variables and
// any changed flags in flags (which may be nil), then validates the result.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyAPIURL, def.APIURL)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyColor, def.Color)
	v.SetDefault(KeyDebugLog, def.DebugLog)

	v.SetConfigType("yaml")
	explicit := os.Getenv(EnvPrefix + "_CONFIG")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyAPIURL, KeyTimeout, KeyColor, KeyDebugLog} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Dir returns the directory searched for config.yaml.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trex")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "trex")
}

// Validate rejects settings the client cannot work with.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid %s %q: expected an http(s) URL", KeyAPIURL, c.APIURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid %s %s: must be positive", KeyTimeout, c.Timeout)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid %s %q: expected auto, always or never", KeyColor, c.Color)
	}
	return nil
}
