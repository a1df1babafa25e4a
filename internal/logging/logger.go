// Package logging wraps zap behind a small structured Logger interface.
//
// The terminal owns stdout while the viewer runs, so the default sink is a
// log file (or nothing at all). Components receive a Logger through their
// constructors; NewNop is the zero-cost choice for tests.
package logging

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a typed key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

func String(key, val string) Field                 { return Field{Key: key, Value: val} }
func Int(key string, val int) Field                { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field        { return Field{Key: key, Value: val} }
func Bool(key string, val bool) Field              { return Field{Key: key, Value: val} }
func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }
func Any(key string, val any) Field                { return Field{Key: key, Value: val} }

// Err records err under the "error" key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Logger is the logging contract used across vizterm.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Named(name string) Logger
	Sync() error
}

// LogConfig selects level, encoding and sinks.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// File is the log destination; empty disables logging.
	File string `koanf:"file"`
}

type zapLogger struct {
	z *zap.Logger
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case float64:
			out = append(out, zap.Float64(f.Key, v))
		case bool:
			out = append(out, zap.Bool(f.Key, v))
		case time.Duration:
			out = append(out, zap.Duration(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}
	return out
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZapFields(fields)...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, toZapFields(fields)...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, toZapFields(fields)...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, toZapFields(fields)...) }
func (l *zapLogger) Sync() error                       { return l.z.Sync() }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{z: l.z.With(toZapFields(fields)...)}
}

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{z: l.z.Named(name)}
}

// ParseLevel maps a level name to a zap level; unknown names are info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a Logger from cfg. An empty File yields a no-op logger.
func New(cfg LogConfig) (Logger, error) {
	if strings.TrimSpace(cfg.File) == "" {
		return NewNop(), nil
	}
	encCfg := zap.NewProductionEncoderConfig()
	encoding := "json"
	if cfg.Format == "console" {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(cfg.Level)),
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{cfg.File},
		ErrorOutputPaths: []string{cfg.File},
	}
	z, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logging: build zap logger: %w", err)
	}
	return &zapLogger{z: z}, nil
}

// NewFromCore wraps an existing core; used by tests with observed output.
func NewFromCore(core zapcore.Core) Logger {
	return &zapLogger{z: zap.New(core, zap.AddCallerSkip(1))}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field)  {}
func (nopLogger) Info(string, ...Field)   {}
func (nopLogger) Warn(string, ...Field)   {}
func (nopLogger) Error(string, ...Field)  {}
func (nopLogger) Sync() error             { return nil }
func (n nopLogger) With(...Field) Logger  { return n }
func (n nopLogger) Named(string) Logger   { return n }

// NewNop returns a Logger that discards everything.
func NewNop() Logger { return nopLogger{} }
