package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a structured log field
type Field = zap.Field

// Logger is the logging interface shared by every module
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Config holds the logger configuration
type Config struct {
	Environment string
	LogPath     string
	Level       string
}

type zapLogger struct {
	zap *zap.Logger
}

// NewLogger creates a zap backed logger. Development environments log to the
// console in a human readable format, everything else logs JSON to stdout and
// to LogPath/app.log when LogPath is set.
func NewLogger(cfg Config) (Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	var encoder zapcore.Encoder
	if cfg.Environment == "" || cfg.Environment == "development" {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	if cfg.LogPath != "" {
		if err := os.MkdirAll(cfg.LogPath, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(filepath.Join(cfg.LogPath, "app.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		sinks = append(sinks, zapcore.AddSync(file))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), level)
	return &zapLogger{zap: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}, nil
}

// NewNop returns a logger that discards everything
func NewNop() Logger {
	return &zapLogger{zap: zap.NewNop()}
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.zap.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.zap.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.zap.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.zap.Error(msg, fields...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{zap: l.zap.With(fields...)}
}

func (l *zapLogger) Sync() error {
	return l.zap.Sync()
}

func String(key, value string) Field { return zap.String(key, value) }

func Int(key string, value int) Field { return zap.Int(key, value) }

func Uint(key string, value uint) Field { return zap.Uint(key, value) }

func Bool(key string, value bool) Field { return zap.Bool(key, value) }

func Duration(key string, value time.Duration) Field { return zap.Duration(key, value) }

func Error(err error) Field { return zap.Error(err) }
