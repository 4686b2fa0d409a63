package logx

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Logger is the record-producing front end. It stamps records with a module
// name and the caller location, then hands them to a dispatch.
type Logger struct {
	module     string
	dispatch   *Dispatch
	showCaller bool
}

// Named creates a logger for the given module. Records are delivered to the
// process-wide dispatch installed with Apply; until one is installed they
// are discarded.
func Named(module string) *Logger {
	return &Logger{module: module, showCaller: true}
}

// WithDispatch returns a copy of the logger bound to a specific dispatch
// instead of the process-wide one.
func (l *Logger) WithDispatch(d *Dispatch) *Logger {
	clone := *l
	clone.dispatch = d
	return &clone
}

// WithCaller returns a copy of the logger with caller capture enabled or
// disabled. Records without caller information render without a source
// location column.
func (l *Logger) WithCaller(show bool) *Logger {
	clone := *l
	clone.showCaller = show
	return &clone
}

// Module returns the module name the logger stamps on records.
func (l *Logger) Module() string {
	return l.module
}

// findCaller finds the first caller outside of the logx package
func findCaller() (string, int) {
	for i := 2; i < 15; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		filename := filepath.Base(file)

		// Skip internal Go runtime files
		if strings.HasPrefix(filename, "proc.go") ||
			strings.HasPrefix(filename, "runtime") ||
			strings.HasPrefix(filename, "asm_") {
			continue
		}

		// Skip logx package files
		if strings.Contains(file, "logx") &&
			(strings.HasSuffix(file, "/logger.go") ||
				strings.HasSuffix(file, "/global.go") ||
				strings.HasSuffix(file, "/dispatch.go")) {
			continue
		}

		return filename, line
	}

	return "", 0
}

func (l *Logger) log(level Level, format string, args ...any) {
	d := l.dispatch
	if d == nil {
		d = Installed()
		if d == nil {
			return
		}
	}

	r := &Record{
		Time:    time.Now(),
		Level:   level,
		Module:  l.module,
		Message: fmt.Sprintf(format, args...),
	}
	if l.showCaller {
		r.File, r.Line = findCaller()
	}

	d.Log(r)
}

// Error logs a message at error level
func (l *Logger) Error(format string, args ...any) {
	l.log(ErrorLevel, format, args...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(format string, args ...any) {
	l.log(WarnLevel, format, args...)
}

// Info logs a message at info level
func (l *Logger) Info(format string, args ...any) {
	l.log(InfoLevel, format, args...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(format string, args ...any) {
	l.log(DebugLevel, format, args...)
}

// Trace logs a message at trace level
func (l *Logger) Trace(format string, args ...any) {
	l.log(TraceLevel, format, args...)
}
