package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// Format selects the zap encoder.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogDebug:
		return zap.DebugLevel
	case LogWarn:
		return zap.WarnLevel
	case LogError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// New builds a zap logger writing to w at the given level.
// Unknown levels fall back to info, unknown formats to console.
func New(level LogLevel, format Format, w io.Writer) *zap.Logger {
	var encoder zapcore.Encoder
	switch format {
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(
		encoder,
		zapcore.Lock(zapcore.AddSync(w)),
		level.zapLevel(),
	)
	return zap.New(core)
}

// NewTest returns a debug-level console logger on stdout.
func NewTest() *zap.Logger {
	return New(LogDebug, FormatConsole, os.Stdout)
}

// NewObserved returns a debug-level logger whose entries are kept in memory
// for assertions.
func NewObserved() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

// Sync flushes the logger, reporting failures through the logger itself.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}
