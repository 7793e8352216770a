// Package debug is an opt-in structured logger for diagnosing state changes.
//
// When enabled via --debug or WARRIOR_DEBUG_ENABLED, every boundary crossing,
// claim and store operation is appended to a .log file under
// ~/.warrior/debug/. When disabled (the default) every logging call is a
// no-op.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/agusx1211/warrior/internal/hexid"
)

// logger is nil when debug mode is off.
var (
	logger   *Logger
	loggerMu sync.RWMutex
)

const (
	// EnvEnabled turns the logger on for one invocation.
	EnvEnabled = "WARRIOR_DEBUG_ENABLED"
	// EnvLogPath forces logs into a specific file.
	EnvLogPath = "WARRIOR_DEBUG_LOG_PATH"
	// EnvHome overrides the ~/.warrior base directory.
	EnvHome = "WARRIOR_HOME"
)

// Logger writes debug lines to a file.
type Logger struct {
	mu        sync.Mutex
	file      *os.File
	path      string
	startedAt time.Time
	pid       int
	command   string
}

// HomeDir returns the warrior base directory: $WARRIOR_HOME or ~/.warrior.
func HomeDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(EnvHome)); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("user home dir: %w", err)
	}
	return filepath.Join(home, ".warrior"), nil
}

// Init opens the log file and returns its path. It is safe to call twice.
func Init() (string, error) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger != nil {
		return logger.path, nil
	}

	path, hid, err := resolveLogPath()
	if err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("debug: open log %s: %w", path, err)
	}
	l := &Logger{
		file:      f,
		path:      path,
		startedAt: time.Now(),
		pid:       os.Getpid(),
		command:   commandLabel(),
	}
	fmt.Fprintf(f, "=== WARRIOR DEBUG LOG ===\nStarted: %s\nPID: %d\nCommand: %s\nLog ID: %s\n===\n\n",
		l.startedAt.Format(time.RFC3339Nano), l.pid, l.command, hid)
	logger = l
	return path, nil
}

// Close writes a trailer and closes the log. Safe to call when not initialized.
func Close() {
	loggerMu.Lock()
	l := logger
	logger = nil
	loggerMu.Unlock()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.file, "\n=== DEBUG LOG CLOSED === (pid=%d duration=%s)\n", l.pid, time.Since(l.startedAt))
	l.file.Close()
}

// Enabled reports whether the logger is active.
func Enabled() bool {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger != nil
}

// Path returns the log file path, or "" when disabled.
func Path() string {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if logger == nil {
		return ""
	}
	return logger.path
}

// ShouldEnableFromEnv reports whether the environment asks for debug logging.
// An explicit off value wins over a configured path.
func ShouldEnableFromEnv() bool {
	path := strings.TrimSpace(os.Getenv(EnvLogPath))
	switch strings.TrimSpace(strings.ToLower(os.Getenv(EnvEnabled))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return path != ""
	}
}

func current() *Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// Log writes a debug line. No-op when disabled.
func Log(component, msg string) {
	if l := current(); l != nil {
		l.write(component, msg)
	}
}

// Logf writes a formatted debug line. No-op when disabled.
func Logf(component, format string, args ...any) {
	if l := current(); l != nil {
		l.write(component, fmt.Sprintf(format, args...))
	}
}

// LogKV writes a debug line with key-value pairs.
// Usage: debug.LogKV("session", "toggled", "collection", "daily", "item", "huno-3")
func LogKV(component, msg string, kvs ...any) {
	l := current()
	if l == nil {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(kvs); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kvs[i], kvs[i+1])
	}
	l.write(component, b.String())
}

// write appends one line:
// TIMESTAMP +ELAPSED [PID] [COMPONENT] CALLER | MESSAGE
func (l *Logger) write(component, msg string) {
	now := time.Now()
	caller := "??:0"
	if _, file, line, ok := runtime.Caller(2); ok {
		if idx := strings.LastIndex(file, "/internal/"); idx >= 0 {
			file = file[idx+1:]
		} else if idx := strings.LastIndex(file, "/cmd/"); idx >= 0 {
			file = file[idx+1:]
		}
		caller = fmt.Sprintf("%s:%d", file, line)
	}
	out := fmt.Sprintf("%s +%12s [P%-6d] [%-10s] %-32s | %s\n",
		now.Format("15:04:05.000000"),
		now.Sub(l.startedAt).Truncate(time.Microsecond),
		l.pid,
		component,
		caller,
		msg,
	)

	l.mu.Lock()
	l.file.WriteString(out)
	l.mu.Unlock()
}

func resolveLogPath() (path, hid string, err error) {
	if forced := strings.TrimSpace(os.Getenv(EnvLogPath)); forced != "" {
		if dir := filepath.Dir(forced); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return "", "", fmt.Errorf("debug: create dir %s: %w", dir, err)
			}
		}
		return forced, "", nil
	}

	home, err := HomeDir()
	if err != nil {
		return "", "", fmt.Errorf("debug: %w", err)
	}
	dir := filepath.Join(home, "debug")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("debug: create dir %s: %w", dir, err)
	}
	hid = hexid.New()
	name := fmt.Sprintf("%s_%s.log", time.Now().Format("20060102T150405"), hid)
	return filepath.Join(dir, name), hid, nil
}

// commandLabel is the binary name plus its first non-flag argument.
func commandLabel() string {
	base := filepath.Base(os.Args[0])
	for _, arg := range os.Args[1:] {
		arg = strings.TrimSpace(arg)
		if arg != "" && !strings.HasPrefix(arg, "-") {
			return base + ":" + arg
		}
	}
	return base
}
