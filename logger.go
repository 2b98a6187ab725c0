package checksum

import (
	"io"

	"github.com/kezhuw/checksum/internal/logger"
)

// Logger receives progress and error messages from Seal and Unseal.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// LogLevel is the minimum severity written by WriterLogger.
type LogLevel = logger.Level

const (
	DebugLevel = logger.DebugLevel
	InfoLevel  = logger.InfoLevel
	WarnLevel  = logger.WarnLevel
	ErrorLevel = logger.ErrorLevel
)

// DiscardLogger is a nop Logger.
var DiscardLogger Logger = logger.Discard

// WriterLogger returns a Logger writing severity-prefixed lines to w.
func WriterLogger(w io.Writer, level LogLevel) Logger {
	return logger.WriterLogger(w, level)
}

var _ Logger = (logger.Logger)(nil)
var _ logger.Logger = (Logger)(nil)
