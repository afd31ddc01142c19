// Package kernel wires the four OBEX Alpha engines (participation,
// header, admission, tokenomics) into a single slot-finalization
// pipeline. It holds no consensus logic of its own: every decision is
// delegated to the engine packages, and this package's only job is
// sequencing, state threading, logging, and metrics.
package kernel

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/aminnizamdev/obex/internal/logging"
)

// Config is the kernel's operational configuration — logging, the
// metrics listen address, and a memory-hard cost override for
// non-production label derivation. Only MemlabelMemKiB influences a
// validation decision: a non-zero value changes the labels the
// participation engine recomputes.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	MetricsAddr string `mapstructure:"metrics_addr"`

	// MemlabelMemKiB overrides the Argon2id memory parameter for
	// non-production deployments (e.g. a test network that can't
	// provision 512MiB per label derivation). Zero keeps the frozen
	// production default.
	MemlabelMemKiB uint32 `mapstructure:"memlabel_mem_kib"`
}

// DefaultConfig returns the kernel's operational defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   "json",
		MetricsAddr: ":9600",
	}
}

// LoadConfig reads operational configuration from env vars prefixed
// OBEX_ (e.g. OBEX_LOG_LEVEL) and, if present, a config file named
// path. A missing config file is not an error; missing env vars fall
// back to DefaultConfig's values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("obex")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("metrics_addr", cfg.MetricsAddr)
	v.SetDefault("memlabel_mem_kib", cfg.MemlabelMemKiB)

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return cfg, fmt.Errorf("kernel: reading config %s: %w", path, err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("kernel: decoding config: %w", err)
	}
	return cfg, nil
}

// loggingConfig adapts Config to the internal/logging package's input
// type, falling back to info/json on an unrecognized value exactly as
// logging.New itself does for Level.
func (c Config) loggingConfig() logging.Config {
	format := logging.FormatJSON
	if strings.EqualFold(c.LogFormat, "text") {
		format = logging.FormatText
	}
	return logging.Config{Level: c.LogLevel, Format: format}
}
