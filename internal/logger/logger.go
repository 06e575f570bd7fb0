// Package logger provides centralized logging for the sequencer.
// It wraps charmbracelet/log with level and destination configuration.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Logger is the global logger instance. Configure and SetOutput update it
// in place, so references taken before configuration stay valid.
var Logger *log.Logger

var (
	mu sync.Mutex
	// output is where the global logger and component loggers write.
	output io.Writer = os.Stderr
	// logFile is the open --log-file handle, closed by Close.
	logFile *os.File
	// components holds one styled logger per prefix.
	components = map[string]*log.Logger{}
)

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetStyles(badgeStyles())
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets up the logger from CLI flags and the environment.
// CLI flags take precedence over SEQUENCER_LOG_LEVEL. A log file replaces
// any file opened by an earlier call.
func Configure(logLevel string, path string, testMode bool) error {
	level := logLevel
	if level == "" {
		level = strings.ToLower(os.Getenv("SEQUENCER_LOG_LEVEL"))
	}
	if level == "" {
		level = "info"
	}

	var dst io.Writer = os.Stderr
	var file *os.File
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		dst, file = f, f
	}
	err := setOutput(dst, file)

	if testMode {
		SetLevel(log.InfoLevel)
	} else {
		SetLevel(ParseLevel(level))
	}
	return err
}

// SetOutput points the global logger and every component logger at w.
// The current level is kept. A previously opened log file is closed.
func SetOutput(w io.Writer) {
	_ = setOutput(w, nil)
}

// setOutput switches destinations and closes the log file being replaced.
func setOutput(w io.Writer, file *os.File) error {
	mu.Lock()
	defer mu.Unlock()

	previous := logFile
	output = w
	logFile = file
	Logger.SetOutput(w)
	for _, l := range components {
		l.SetOutput(w)
	}
	if previous != nil && previous != file {
		return previous.Close()
	}
	return nil
}

// SetLevel changes the level of the global logger and every component logger.
func SetLevel(level log.Level) {
	mu.Lock()
	defer mu.Unlock()

	Logger.SetLevel(level)
	for _, l := range components {
		l.SetLevel(level)
	}
}

// Close releases the log file opened by Configure, if any, and sends
// further logging to stderr.
func Close() error {
	mu.Lock()
	file := logFile
	mu.Unlock()
	if file == nil {
		return nil
	}
	return setOutput(os.Stderr, nil)
}

// ParseLevel converts a level name to a log level. Unknown names map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs a fatal message with optional key-value pairs and exits.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// CommandExecution logs command dispatch details for debugging.
func CommandExecution(command string, params []string) {
	Debug("Executing command", "command", command, "params", params)
}

// NewStyledLogger returns the component logger for prefix, e.g. "Processor"
// or "Script". Component loggers follow later Configure, SetOutput and
// SetLevel calls.
func NewStyledLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := components[prefix]; ok {
		return l
	}

	componentLogger := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(badgeStyles())
	componentLogger.SetLevel(Logger.GetLevel())
	components[prefix] = componentLogger

	return componentLogger
}

// badgeStyles renders levels as lipgloss badges for every logger.
func badgeStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = badge("INFO", "33")
	styles.Levels[log.ErrorLevel] = badge("ERROR", "196")
	styles.Levels[log.DebugLevel] = badge("DEBUG", "240")
	styles.Levels[log.WarnLevel] = badge("WARN", "214")
	styles.Levels[log.FatalLevel] = badge("FATAL", "88")

	styles.Keys["command"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	styles.Keys["line"] = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styles.Keys["run"] = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	return styles
}

func badge(label, background string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color("15"))
}
