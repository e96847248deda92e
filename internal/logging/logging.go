package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/scottbass3/keel/internal/api"
)

const timeFormat = "15:04:05"

// New builds a logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
}

func ParseLevel(level string) log.Level {
	trimmed := strings.ToLower(strings.TrimSpace(level))
	if trimmed == "warning" {
		trimmed = "warn"
	}
	parsed, err := log.ParseLevel(trimmed)
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}

// OpenFile opens path for appending, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// RequestLogger reports every backend request to logger and, when ch is
// set, to the debug panel. Sends never block; a full channel drops lines.
func RequestLogger(logger *log.Logger, ch chan<- string) api.RequestLogger {
	return func(entry api.RequestLog) {
		line := FormatRequest(entry)
		if logger != nil {
			logger.Debug("request", "method", entry.Method, "url", entry.URL, "status", entry.Status, "id", entry.RequestID)
		}
		if ch == nil {
			return
		}
		select {
		case ch <- line:
		default:
		}
	}
}

func FormatRequest(entry api.RequestLog) string {
	var b strings.Builder
	b.WriteString(entry.Method)
	b.WriteString(" ")
	b.WriteString(entry.URL)
	if entry.Status > 0 {
		fmt.Fprintf(&b, " -> %d", entry.Status)
	}
	if len(entry.Headers) == 0 {
		return b.String()
	}

	b.WriteString(" | ")
	keys := make([]string, 0, len(entry.Headers))
	for key := range entry.Headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for i, key := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(strings.Join(entry.Headers[key], ","))
	}
	return b.String()
}
