package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vault51/basemodel/internal/env"
)

// Options configure the logger.
type Options struct {
	logToFile bool
	logFile   string
}

// Option mutates Options.
type Option func(*Options)

// WithLogToFile duplicates log output into a rotated file.
func WithLogToFile(v bool) Option {
	return func(o *Options) {
		o.logToFile = v
	}
}

// WithLogFile sets the log file path used when file logging is enabled.
func WithLogFile(path string) Option {
	return func(o *Options) {
		o.logFile = path
	}
}

// New builds the process logger: tint output in development, JSON in
// production, optionally duplicated into a lumberjack-rotated file.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	o := &Options{
		logFile: "logs/basemodel.log",
	}
	for _, opt := range opts {
		opt(o)
	}

	var w io.Writer = os.Stderr
	if o.logToFile {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   o.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	var handler slog.Handler
	if environment == env.Production {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			NoColor:    o.logToFile,
		})
	}

	return slog.New(handler)
}
