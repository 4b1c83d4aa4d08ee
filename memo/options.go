package memo

import (
	"time"

	"go.uber.org/zap"
)

const (
	DefaultTTL        = 5 * time.Minute
	DefaultMaxEntries = 1000
)

// Config holds the tunables a caller may leave unset.
// Zero or negative values fall back to DefaultTTL and DefaultMaxEntries.
type Config struct {
	TTL        time.Duration
	MaxEntries int
}

// NewConfig normalizes unset fields to their defaults.
func NewConfig(ttl time.Duration, maxEntries int) Config {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return Config{
		TTL:        ttl,
		MaxEntries: maxEntries,
	}
}

type settings struct {
	Config
	now      func() time.Time
	logger   *zap.Logger
	hashKeys bool
}

// Option overrides a single cache setting on top of Config.
type Option func(*settings)

// WithTTL sets how long an entry stays fresh. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(s *settings) {
		if ttl > 0 {
			s.TTL = ttl
		}
	}
}

// WithMaxEntries sets the capacity. Non-positive values are ignored.
func WithMaxEntries(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.MaxEntries = n
		}
	}
}

// WithClock replaces time.Now as the source of entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for eviction and expiry events. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHashedKeys stores a 64-bit xxhash digest of each derived key instead of
// the key itself. Large structured keys (matrices, long series) then cost a
// fixed amount of memory, at the price of a non-zero collision probability.
func WithHashedKeys() Option {
	return func(s *settings) {
		s.hashKeys = true
	}
}
