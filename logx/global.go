package logx

import "sync"

var (
	defaultMu     sync.RWMutex
	defaultLogger = Named("main")
)

// SetModule changes the module name used by the package-level logging
// functions, so that their records match a per-module threshold configured
// on the installed dispatch.
func SetModule(module string) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = Named(module)
}

// Default returns the logger used by the package-level logging functions.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Global logging functions
func Error(format string, args ...any) {
	Default().log(ErrorLevel, format, args...)
}

func Warn(format string, args ...any) {
	Default().log(WarnLevel, format, args...)
}

func Info(format string, args ...any) {
	Default().log(InfoLevel, format, args...)
}

func Debug(format string, args ...any) {
	Default().log(DebugLevel, format, args...)
}

func Trace(format string, args ...any) {
	Default().log(TraceLevel, format, args...)
}
