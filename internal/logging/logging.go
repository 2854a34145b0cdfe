// Package logging provides standardized logging utilities for the Floyd
// Speak interpreter. Adapted from the compiler-phase logger shape of the
// source toolchain this module was raised from, backed by
// github.com/charmbracelet/log instead of log/slog.
package logging

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	styleDim   = lipgloss.NewStyle().Faint(true)
	stylePhase = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// Config holds logger configuration.
type Config struct {
	Verbose   bool
	Format    string // "text" or "json"
	Output    *os.File
	AddSource bool
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{Format: "text", Output: os.Stderr}
}

var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// Init initializes the global logger with the given configuration.
func Init(cfg Config) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := log.Options{
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    cfg.AddSource,
		TimeFormat:      "15:04:05",
	}
	if cfg.Format == "json" {
		opts.Formatter = log.JSONFormatter
	}
	defaultLogger = log.NewWithOptions(output, opts)
}

// InitDev initializes logging for development (debug level, text format).
func InitDev() {
	Init(Config{Verbose: true, Format: "text", Output: os.Stderr, AddSource: true})
}

// InitProd initializes logging for production (info level, json format).
func InitProd() {
	Init(Config{Format: "json", Output: os.Stderr})
}

func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }
func Info(msg string, args ...any)  { defaultLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { defaultLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// With returns a child logger scoped with the given key/value attributes.
func With(args ...any) *log.Logger { return defaultLogger.With(args...) }

// Interpreter-phase logging helpers, mirroring the compiler-phase helpers
// this package was generalized from.

// LogPhase logs the start of an interpreter phase (parse, global-init, call).
func LogPhase(phase string) {
	Info(stylePhase.Render("phase start"), "phase", phase)
}

// LogPhaseComplete logs the completion of an interpreter phase.
func LogPhaseComplete(phase string) {
	Info(stylePhase.Render("phase done"), "phase", phase)
}

// LogParse logs ingestion of the JSON AST.
func LogParse(nodeCount int) {
	Debug("parsed AST", "top_level_statements", nodeCount)
}

// LogGlobalInit logs completion of global statement execution.
func LogGlobalInit(bindingCount int) {
	Info("global scope initialized", "bindings", bindingCount)
}

// LogCall logs a function invocation (host or interpreted).
func LogCall(name string, host bool, argc int) {
	Debug(styleDim.Render("call"), "name", name, "host", host, "args", argc)
}

// LogHostPrint records a print() host-function invocation alongside stdout.
func LogHostPrint(text string) {
	Debug("print", "text", text)
}

// LogError logs an evaluation error.
func LogError(phase string, kind string, subject string) {
	Error("evaluation error", "phase", phase, "kind", kind, "subject", subject)
}
