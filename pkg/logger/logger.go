// Package logger is the site's structured logger: zerolog behind a small
// interface, with request-scoped loggers carried in the request context.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel maps a LOG_LEVEL value to a Level. Unknown values mean info.
func ParseLevel(s string) Level {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case LevelDebug, LevelWarn, LevelError:
		return l
	case "warning":
		return LevelWarn
	default:
		return LevelInfo
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Fatal(msg string, err error, fields ...Field)

	WithContext(ctx context.Context) Logger
	WithFields(fields ...Field) Logger
	WithRequestID(requestID string) Logger
	WithComponent(component string) Logger
}

type Field struct {
	Key   string
	Value interface{}
}

type ZerologLogger struct {
	logger zerolog.Logger
}

type Config struct {
	Level       Level
	Environment string // "production" logs JSON, anything else logs to the console
	ServiceName string
	Version     string
	Output      io.Writer
}

const defaultServiceName = "burokrat-site"

var globalLogger *ZerologLogger

// Init replaces the global logger and sets the global level.
func Init(cfg Config) {
	globalLogger = New(cfg)
	zerolog.SetGlobalLevel(ParseLevel(string(cfg.Level)).zerolog())
}

// New builds a logger without touching the global instance.
func New(cfg Config) *ZerologLogger {
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}
	out := cfg.Output

	if cfg.Environment == "production" {
		if out == nil {
			out = os.Stdout
		}
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return &ZerologLogger{logger: zerolog.New(out).With().
			Timestamp().
			Str("service", cfg.ServiceName).
			Str("version", cfg.Version).
			Logger()}
	}

	if out == nil {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}
	return &ZerologLogger{logger: zerolog.New(out).With().Timestamp().Logger()}
}

// Nop discards everything.
func Nop() Logger {
	return &ZerologLogger{logger: zerolog.Nop()}
}

// Get returns the global logger, creating a development one on first use.
func Get() Logger {
	if globalLogger == nil {
		Init(Config{Level: LevelInfo})
	}
	return globalLogger
}

func (l *ZerologLogger) Debug(msg string, fields ...Field) { write(l.logger.Debug(), nil, fields).Msg(msg) }
func (l *ZerologLogger) Info(msg string, fields ...Field)  { write(l.logger.Info(), nil, fields).Msg(msg) }
func (l *ZerologLogger) Warn(msg string, fields ...Field)  { write(l.logger.Warn(), nil, fields).Msg(msg) }

func (l *ZerologLogger) Error(msg string, err error, fields ...Field) {
	write(l.logger.Error(), err, fields).Msg(msg)
}

// Fatal logs and exits the process.
func (l *ZerologLogger) Fatal(msg string, err error, fields ...Field) {
	write(l.logger.Fatal(), err, fields).Msg(msg)
}

func write(event *zerolog.Event, err error, fields []Field) *zerolog.Event {
	if err != nil {
		event = event.Err(err)
	}
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// WithContext attaches the request id stored in ctx, if any.
func (l *ZerologLogger) WithContext(ctx context.Context) Logger {
	if id := RequestID(ctx); id != "" {
		return l.WithRequestID(id)
	}
	return l
}

func (l *ZerologLogger) WithFields(fields ...Field) Logger {
	ctx := l.logger.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &ZerologLogger{logger: ctx.Logger()}
}

func (l *ZerologLogger) WithRequestID(requestID string) Logger {
	return &ZerologLogger{logger: l.logger.With().Str("request_id", requestID).Logger()}
}

func (l *ZerologLogger) WithComponent(component string) Logger {
	return &ZerologLogger{logger: l.logger.With().Str("component", component).Logger()}
}
