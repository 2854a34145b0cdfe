// Package config loads the CLI driver's optional configuration file:
// default log level and format, overridable by flags.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the subset of CLI behavior a config file can set defaults for;
// explicit flags on the command line always take precedence.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Defaults mirrors internal/logging's DefaultConfig (info level, text
// format).
func Defaults() Config {
	return Config{LogLevel: "info", LogFormat: "text"}
}

// Load reads path (if non-empty) as a YAML config file, falling back to
// Defaults for any field it does not set. An environment variable
// FLOYD_LOG_LEVEL / FLOYD_LOG_FORMAT overrides the file, following the
// teacher's env-var-overrides-file precedence for CLI configuration.
func Load(path string) (Config, error) {
	cfg := Defaults()

	v := viper.New()
	v.SetEnvPrefix("floyd")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
