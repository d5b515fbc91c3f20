package logs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes JSON lines with a timestamp and event fields. The zero value
// and a nil *Logger are disabled loggers.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	f       *os.File
	enabled bool
}

// Disabled returns a logger that drops every event.
func Disabled() *Logger { return &Logger{} }

// NewFromEnv returns a logger if NEODYMIUM_LOG is set to a truthy value
// or if NEODYMIUM_LOG_FILE is provided. Otherwise it returns a disabled logger.
// When enabled and no file is specified, it writes to ./neodymium.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("NEODYMIUM_LOG_FILE")
	enabled := false
	if v := os.Getenv("NEODYMIUM_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if lf != "" {
		enabled = true
	}
	if !enabled {
		return Disabled()
	}
	if lf == "" {
		lf = filepath.Join(".", "neodymium.log")
	}
	l, err := Open(lf)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		return Disabled()
	}
	return l
}

// Open appends events to the file at path.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &Logger{w: bufio.NewWriter(f), f: f, enabled: true}, nil
}

// Enabled reports whether events are written anywhere.
func (l *Logger) Enabled() bool { return l != nil && l.enabled }

// Close flushes and closes the underlying file if enabled.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	_ = l.f.Close()
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, rune, modifiers, mode, page, path, rows, error.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	rec := map[string]any{
		"time":  time.Now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return
	}
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}
