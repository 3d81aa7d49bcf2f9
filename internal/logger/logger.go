package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

type Options struct {
	Environment string
	Level       string
	// File enables an additional rotating JSON sink.
	File string
}

// New builds the service logger. Development gets a human readable console
// writer, every other environment logs JSON to stdout.
func New(opts Options) zerolog.Logger {
	var out io.Writer = os.Stdout
	if isDevelopment(opts.Environment) {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	if opts.File != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		})
	}

	return zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Str("service", "apper-api").
		Logger()
}

func ParseLevel(raw string) zerolog.Level {
	raw = strings.ToLower(strings.TrimSpace(raw))
	level, err := zerolog.ParseLevel(raw)
	if err != nil || raw == "" {
		return zerolog.InfoLevel
	}
	return level
}

func isDevelopment(env string) bool {
	switch strings.ToLower(env) {
	case "", "development", "dev", "local":
		return true
	}
	return false
}
