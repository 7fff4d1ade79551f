// Package logger provides file-backed structured logging. The terminal belongs
// to the console frame, so nothing is ever logged to stdout or stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Entry and Fields alias the logrus types so callers do not import logrus.
type Entry = logrus.Entry
type Fields = logrus.Fields
type Level = logrus.Level

// DefaultLogPath is used when SetupFile is given an empty path.
const DefaultLogPath = "logs/rotanika.log"

var rootLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(PlainFormatter{})
	return l
}

// SetupFile redirects all logging to the file at logPath, creating parent
// directories as needed. The returned closer releases the file.
func SetupFile(logPath string, level Level) (io.Closer, string, error) {
	if logPath == "" {
		logPath = DefaultLogPath
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, "", fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, "", fmt.Errorf("open log file: %w", err)
	}
	rootLogger.SetOutput(f)
	rootLogger.SetLevel(level)
	return f, logPath, nil
}

// ParseLevel maps a level name such as "debug" or "warn" to a Level. An
// empty name means info.
func ParseLevel(name string) (Level, error) {
	if name == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// SetOutput redirects logging to w. Tests use it to capture output.
func SetOutput(w io.Writer) {
	rootLogger.SetOutput(w)
}

// Named returns an entry tagged with a component field.
func Named(component string) *Entry {
	entry := logrus.NewEntry(rootLogger)
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry
}

// PlainFormatter renders "[timestamp] [LEVEL] [component] message k=v ..."
// with the remaining fields sorted by key.
type PlainFormatter struct{}

// Format implements logrus.Formatter.
func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}

	parts := make([]string, 0, 5)
	parts = append(parts, fmt.Sprintf("[%s]", entry.Time.UTC().Format(time.RFC3339Nano)))
	parts = append(parts, fmt.Sprintf("[%s]", strings.ToUpper(entry.Level.String())))
	if component, ok := entry.Data["component"].(string); ok && component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", component))
	}
	parts = append(parts, entry.Message)
	if fields := formatFields(entry.Data); fields != "" {
		parts = append(parts, fields)
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

func formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "component" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}
