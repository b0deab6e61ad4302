package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logPath string
	logFile *os.File

	writerOnce sync.Once
	logWriter  io.Writer

	appLoggerOnce sync.Once
	appLogger     *slog.Logger
	appLevel      *slog.LevelVar

	frameworkLoggerOnce sync.Once
	frameworkLogger     *slog.Logger
	frameworkLevel      *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Call before the first
// Logger/FrameworkLogger call to take effect.
func SetLogPath(path string) {
	logPath = path
}

func setupWriter() {
	writerOnce.Do(func() {
		if logPath == "" {
			logWriter = os.Stdout
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			logWriter = os.Stdout
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open the log file, fall back to console-only.
			logWriter = os.Stdout
			return
		}

		logFile = f
		logWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

// Logger returns the application logger handed out to consumers.
func Logger() *slog.Logger {
	appLoggerOnce.Do(func() {
		appLevel = &slog.LevelVar{}
		setupWriter()
		appLogger = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level: appLevel,
		}))
	})
	return appLogger
}

// FrameworkLogger returns the logger used by braciole itself. It shares the
// writer with the application logger but has an independent level, so
// framework chatter can be silenced without muting the application.
func FrameworkLogger() *slog.Logger {
	frameworkLoggerOnce.Do(func() {
		frameworkLevel = &slog.LevelVar{}
		setupWriter()
		frameworkLogger = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level: frameworkLevel,
		}))
	})
	return frameworkLogger
}

// SetLogLevel sets the minimum level for the application logger.
func SetLogLevel(level slog.Level) {
	Logger()
	appLevel.Set(level)
}

// SetFrameworkLogLevel sets the minimum level for the framework logger.
func SetFrameworkLogLevel(level slog.Level) {
	FrameworkLogger()
	frameworkLevel.Set(level)
}

// ParseLogLevel maps a level name to a slog.Level, defaulting to info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
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

// CloseLogger releases the log file, if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
