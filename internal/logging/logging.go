// Package logging sets up the process logger. Output goes to a rotated
// file, never the terminal: the terminal belongs to the UI for the whole
// life of the process.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup builds the process logger writing to path and installs it as the
// slog default. With debug set the level drops to Debug and caller
// locations are reported.
func Setup(path string, debug bool) *slog.Logger {
	// Best effort; lumberjack will surface a real failure on first write.
	os.MkdirAll(filepath.Dir(path), 0700)

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		ReportCaller:    debug,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
