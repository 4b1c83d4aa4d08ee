// Command mathmemo benchmarks the mathx routines with and without their
// memoization caches.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/on-the-ground/memo_ive_go/bench"
	"github.com/on-the-ground/memo_ive_go/config"
	"github.com/on-the-ground/memo_ive_go/mathx"
	"github.com/on-the-ground/memo_ive_go/shared/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type flags struct {
	configPath string
	iterations int
	budget     time.Duration
	verbose    bool
	n          int
	matrixSize int
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("mathmemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "path to a .toml or .yaml config file")
	fs.IntVar(&f.iterations, "iterations", 0, "iterations per benchmark (overrides config)")
	fs.DurationVar(&f.budget, "budget", 0, "wall-clock budget per benchmark (overrides config)")
	fs.BoolVar(&f.verbose, "verbose", false, "log at debug level")
	fs.IntVar(&f.n, "n", 100000, "sieve limit and statistics series length")
	fs.IntVar(&f.matrixSize, "matrix", 64, "square matrix size for multiplication")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.n < 2 || f.matrixSize < 1 {
		return f, fmt.Errorf("-n must be >= 2 and -matrix >= 1, got %d and %d", f.n, f.matrixSize)
	}
	return f, nil
}

func loadSettings(f flags) (config.Settings, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Settings{}, err
		}
		cfg = loaded
	}
	if f.iterations > 0 {
		cfg.Bench.Iterations = f.iterations
	}
	if f.budget > 0 {
		cfg.Bench.Budget = f.budget.String()
	}
	if f.verbose {
		cfg.Log.Level = string(log.LogDebug)
	}
	return cfg.Resolve()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	settings, err := loadSettings(f)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	logger := log.New(settings.LogLevel, settings.LogFormat, stderr)
	defer log.Sync(logger)

	calc := mathx.NewCalculator(mathx.CalculatorConfig{
		Cache:    settings.Cache,
		Logger:   logger,
		HashKeys: settings.HashKeys,
	})

	logger.Info("starting benchmarks",
		zap.Duration("ttl", settings.Cache.TTL),
		zap.Int("max_entries", settings.Cache.MaxEntries),
		zap.Int("iterations", settings.Bench.Iterations),
		zap.Duration("budget", settings.Bench.Budget),
	)

	for _, p := range pairs(calc, f.n, f.matrixSize) {
		if ctx.Err() != nil {
			logger.Warn("interrupted", zap.Error(ctx.Err()))
			return 130
		}
		plain, err := bench.Run(ctx, p.name+"/plain", p.plain, settings.Bench)
		if err != nil {
			logger.Error("benchmark failed", zap.String("name", p.name), zap.Error(err))
			return 1
		}
		memoized, err := bench.Run(ctx, p.name+"/memoized", p.memoized, settings.Bench)
		if err != nil {
			logger.Error("benchmark failed", zap.String("name", p.name), zap.Error(err))
			return 1
		}
		_, _ = fmt.Fprintln(stdout, plain)
		_, _ = fmt.Fprintln(stdout, memoized)
		_, _ = fmt.Fprintf(stdout, "%s: speedup x%.1f\n\n", p.name, bench.Speedup(plain, memoized))
	}

	for name, s := range calc.CacheStats() {
		logger.Debug("cache stats",
			zap.String("cache", name),
			zap.Uint64("hits", s.Hits),
			zap.Uint64("misses", s.Misses),
			zap.Uint64("evictions", s.Evictions),
			zap.Uint64("expirations", s.Expirations),
		)
	}
	if purged := calc.PurgeExpired(); purged > 0 {
		logger.Info("purged expired entries", zap.Int("count", purged))
	}
	return 0
}
