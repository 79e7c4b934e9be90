package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger so packages share one field vocabulary
type Logger struct {
	*zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string    // debug, info, warn, error
	Pretty     bool      // Human-readable console output
	OutputFile string    // Optional file, appended to alongside the writer
	Writer     io.Writer // Defaults to stdout
}

// New creates a logger from cfg
// An unknown level falls back to info; an unusable OutputFile is reported
// on the returned logger and otherwise ignored
func New(cfg Config) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := cfg.Writer
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	var fileErr error
	if cfg.OutputFile != "" {
		file, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fileErr = err
		} else {
			out = io.MultiWriter(out, file)
		}
	}

	zl := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "cityweather").
		Logger()

	l := &Logger{Logger: &zl}
	if fileErr != nil {
		l.Warn().Err(fileErr).Str("file", cfg.OutputFile).Msg("Log file unavailable, logging to stdout only")
	}
	return l
}

// NewDefault creates an info-level pretty logger
func NewDefault() *Logger {
	return New(Config{Level: "info", Pretty: true})
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	zl := zerolog.Nop()
	return &Logger{Logger: &zl}
}

// WithComponent tags entries with the emitting package
func (l *Logger) WithComponent(component string) *Logger {
	return l.with("component", component)
}

// WithRequestID tags entries with chi's request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.with("request_id", requestID)
}

// WithDevice tags entries with a device ID; an empty ID adds nothing
func (l *Logger) WithDevice(deviceID string) *Logger {
	if deviceID == "" {
		return l
	}
	return l.with("device_id", deviceID)
}

func (l *Logger) with(key, value string) *Logger {
	zl := l.With().Str(key, value).Logger()
	return &Logger{Logger: &zl}
}
