package logger

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
)

type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type LogCloser interface {
	Logger
	io.Closer
}

// Level is the minimum severity a writer logger emits.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < DebugLevel || l > ErrorLevel {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(name string) (Level, error) {
	for i, s := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return InfoLevel, fmt.Errorf("checksum: unknown log level %q", name)
}

var Discard LogCloser = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Close() error                              { return nil }

type nopCloser struct {
	Logger
}

func (nopCloser) Close() error { return nil }

func NopCloser(l Logger) LogCloser {
	return nopCloser{l}
}

type writerLogger struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
}

func (l *writerLogger) printf(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	var buf bytes.Buffer
	buf.WriteString(level.String())
	buf.WriteByte(' ')
	fmt.Fprintf(&buf, format, args...)
	if b := buf.Bytes(); b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
	l.mu.Lock()
	l.w.Write(buf.Bytes())
	l.mu.Unlock()
}

func (l *writerLogger) Debugf(format string, args ...interface{}) {
	l.printf(DebugLevel, format, args...)
}

func (l *writerLogger) Infof(format string, args ...interface{}) {
	l.printf(InfoLevel, format, args...)
}

func (l *writerLogger) Warnf(format string, args ...interface{}) {
	l.printf(WarnLevel, format, args...)
}

func (l *writerLogger) Errorf(format string, args ...interface{}) {
	l.printf(ErrorLevel, format, args...)
}

func (l *writerLogger) Close() error {
	if c, ok := l.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// WriterLogger writes one severity-prefixed line per message at or above
// level. Close closes w if it is an io.Closer.
func WriterLogger(w io.Writer, level Level) LogCloser {
	return &writerLogger{w: w, level: level}
}
