// Package logger configures the application-wide structured loggers.
// Two logrus instances are exposed: InfoLogger for operational events
// and ErrorLogger for failures.  Both write JSON lines to rotated
// files under logs/ and mirror output to stdout/stderr so container
// logs stay useful.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// InfoLogger records normal operational events.
	InfoLogger = logrus.New()
	// ErrorLogger records failures that need operator attention.
	ErrorLogger = logrus.New()
)

// InitLoggers wires formatters, levels and rotated file outputs.  It
// must be called once at startup before any logging happens.
func InitLoggers() {
	InfoLogger.SetFormatter(&logrus.JSONFormatter{})
	ErrorLogger.SetFormatter(&logrus.JSONFormatter{})

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)

	InfoLogger.SetOutput(io.MultiWriter(os.Stdout, rotated("logs/info.log")))
	ErrorLogger.SetOutput(io.MultiWriter(os.Stderr, rotated("logs/error.log")))
}

// rotated returns a size-rotated file writer.  Old files are kept for
// four weeks and compressed.
func rotated(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
}
