// Package logging builds the structured slog logger used by the transport
// command: JSON or text records on a writer, or on a size-rotated file.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects level, format and destination.
type Config struct {
	Level  string `mapstructure:"level"  validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json text"`

	// File enables rotation through lumberjack; empty writes to the fallback writer.
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"    validate:"gte=0"` // MB
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age"     validate:"gte=0"` // days
	Compress   bool   `mapstructure:"compress"`
}

// Logger wraps *slog.Logger together with the file it may own.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// Close releases the rotated log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

// ParseLevel maps debug/info/warn/error to slog levels; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger from cfg. Records go to cfg.File through lumberjack
// when set, otherwise to w. The time attribute is renamed to "timestamp".
func New(cfg Config, w io.Writer) *Logger {
	out := w
	var closer io.Closer
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		out, closer = lj, lj
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}

			return a
		},
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	return &Logger{Logger: slog.New(handler), closer: closer}
}
