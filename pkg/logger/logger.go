// Package logger configures the process-wide logrus logger with optional
// rotating file output.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared instance set up by Init. The package-level helpers
// are safe to call before Init; they fall back to the logrus standard logger.
var Logger *logrus.Logger

// Config controls level and optional rotating file output.
type Config struct {
	Level      string // debug, info, warn, error
	OutputFile string // empty means console only
	MaxSize    int    // MB per file before rotation
	MaxBackups int    // rotated files to keep
	MaxAge     int    // days to keep rotated files
	Compress   bool
}

// Init builds the shared logger. An unknown level falls back to info.
func Init(config Config) error {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})

	writers := []io.Writer{os.Stdout}
	if config.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputFile), 0o755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	out := io.MultiWriter(writers...)
	logger.SetOutput(out)

	// Route the global logrus logger to the same sinks so entries created
	// via logrus directly also land in the file.
	logrus.SetOutput(out)
	logrus.SetLevel(level)

	Logger = logger
	return nil
}

// InitDefault sets up an info-level console logger.
func InitDefault() error {
	return Init(Config{Level: "info"})
}

// Debugf logs at DEBUG level.
func Debugf(format string, args ...interface{}) {
	get().Debugf(format, args...)
}

// Infof logs at INFO level.
func Infof(format string, args ...interface{}) {
	get().Infof(format, args...)
}

// Warnf logs at WARN level.
func Warnf(format string, args ...interface{}) {
	get().Warnf(format, args...)
}

// Errorf logs at ERROR level.
func Errorf(format string, args ...interface{}) {
	get().Errorf(format, args...)
}

// WithField returns an entry with one field attached.
func WithField(key string, value interface{}) *logrus.Entry {
	return get().WithField(key, value)
}

// WithFields returns an entry with several fields attached.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return get().WithFields(fields)
}

func get() *logrus.Logger {
	if Logger != nil {
		return Logger
	}
	return logrus.StandardLogger()
}
