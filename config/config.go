// Package config loads the mathmemo configuration from TOML or YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/memo_ive_go/bench"
	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/shared/log"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidValue      = errors.New("invalid config value")
)

// CacheConfig mirrors the [cache] table.
type CacheConfig struct {
	TTL        string `toml:"ttl" yaml:"ttl"`
	MaxEntries int    `toml:"max_entries" yaml:"max_entries"`
	HashKeys   bool   `toml:"hash_keys" yaml:"hash_keys"`
}

// BenchConfig mirrors the [bench] table.
type BenchConfig struct {
	Iterations int    `toml:"iterations" yaml:"iterations"`
	Warmup     int    `toml:"warmup" yaml:"warmup"`
	Budget     string `toml:"budget" yaml:"budget"`
	Slowest    int    `toml:"slowest" yaml:"slowest"`
}

// LogConfig mirrors the [log] table.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Config is the on-disk shape of a configuration file.
type Config struct {
	Cache CacheConfig `toml:"cache" yaml:"cache"`
	Bench BenchConfig `toml:"bench" yaml:"bench"`
	Log   LogConfig   `toml:"log" yaml:"log"`
}

// Settings is a validated Config converted to the types its consumers take.
type Settings struct {
	Cache     memo.Config
	HashKeys  bool
	Bench     bench.Options
	LogLevel  log.LogLevel
	LogFormat log.Format
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			TTL:        memo.DefaultTTL.String(),
			MaxEntries: memo.DefaultMaxEntries,
		},
		Bench: BenchConfig{
			Iterations: bench.DefaultIterations,
			Warmup:     10,
			Budget:     "5s",
			Slowest:    bench.DefaultSlowest,
		},
		Log: LogConfig{
			Level:  string(log.LogInfo),
			Format: string(log.FormatConsole),
		},
	}
}

// Load reads path over the defaults. The format follows the file extension:
// .toml, .yaml or .yml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return cfg, nil
}

// Resolve validates every field and converts the config into Settings.
// All problems are reported together.
func (c Config) Resolve() (Settings, error) {
	var errs error

	ttl, err := parseDuration(ConfigCacheTTL, c.Cache.TTL, false)
	errs = multierr.Append(errs, err)
	if c.Cache.MaxEntries <= 0 {
		errs = multierr.Append(errs, invalid(ConfigCacheMaxEntries, c.Cache.MaxEntries, "must be positive"))
	}

	budget, err := parseDuration(ConfigBenchBudget, c.Bench.Budget, true)
	errs = multierr.Append(errs, err)
	if c.Bench.Iterations <= 0 {
		errs = multierr.Append(errs, invalid(ConfigBenchIterations, c.Bench.Iterations, "must be positive"))
	}
	if c.Bench.Warmup < 0 {
		errs = multierr.Append(errs, invalid(ConfigBenchWarmup, c.Bench.Warmup, "must not be negative"))
	}
	if c.Bench.Slowest <= 0 {
		errs = multierr.Append(errs, invalid(ConfigBenchSlowest, c.Bench.Slowest, "must be positive"))
	}

	level := log.LogLevel(strings.ToLower(c.Log.Level))
	switch level {
	case log.LogDebug, log.LogInfo, log.LogWarn, log.LogError:
	default:
		errs = multierr.Append(errs, invalid(ConfigLogLevel, c.Log.Level, "want debug, info, warn or error"))
	}
	format := log.Format(strings.ToLower(c.Log.Format))
	switch format {
	case log.FormatConsole, log.FormatJSON:
	default:
		errs = multierr.Append(errs, invalid(ConfigLogFormat, c.Log.Format, "want console or json"))
	}

	if errs != nil {
		return Settings{}, errs
	}
	return Settings{
		Cache:     memo.NewConfig(ttl, c.Cache.MaxEntries),
		HashKeys:  c.Cache.HashKeys,
		Bench:     bench.NewOptions(c.Bench.Iterations, c.Bench.Warmup, budget, c.Bench.Slowest),
		LogLevel:  level,
		LogFormat: format,
	}, nil
}

func parseDuration(key, raw string, allowZero bool) (time.Duration, error) {
	if raw == "" && allowZero {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, invalid(key, raw, err.Error())
	}
	if d < 0 || (d == 0 && !allowZero) {
		return 0, invalid(key, raw, "must be positive")
	}
	return d, nil
}

func invalid(key string, value any, reason string) error {
	return fmt.Errorf("%w: %s=%v: %s", ErrInvalidValue, key, value, reason)
}
