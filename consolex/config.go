package consolex

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/Abraxas-365/termlogx/logx"
)

// ColorMode controls whether rendered lines are wrapped in ANSI color
// escapes.
type ColorMode int

const (
	// ColorAuto colors output only when the destination is an interactive
	// terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Config assembles the console dispatch: which module is verbose, how
// verbose it is, and how level labels are rendered. Build it with New,
// customize it with the chained methods, then consume it once with Dispatch
// or Build.
type Config struct {
	module    string
	level     logx.Level
	levelName func(logx.Level) string
	colorMode ColorMode
	stdout    io.Writer
	stderr    io.Writer
}

// New creates a configuration that filters the named module at exactly the
// given level. With a level of DebugLevel or more verbose, other modules are
// allowed through at WarnLevel and above; otherwise they are suppressed
// entirely.
func New(module string, level logx.Level) *Config {
	return &Config{
		module:    module,
		level:     level,
		levelName: defaultLevelName,
		colorMode: ColorAuto,
	}
}

func defaultLevelName(l logx.Level) string {
	switch l {
	case logx.ErrorLevel:
		return "E: "
	case logx.WarnLevel:
		return "W: "
	case logx.InfoLevel:
		return "I: "
	case logx.DebugLevel:
		return "D: "
	case logx.TraceLevel:
		return "T: "
	default:
		return ""
	}
}

// Minimal drops the level labels when the configured level is coarser than
// DebugLevel, leaving only context and message on each line. At DebugLevel
// and below it has no effect.
func (c *Config) Minimal() *Config {
	if c.level < logx.DebugLevel {
		c.levelName = func(logx.Level) string { return "" }
	}
	return c
}

// LevelNames overrides the level label function. The function must return a
// label for every level.
func (c *Config) LevelNames(fn func(logx.Level) string) *Config {
	c.levelName = fn
	return c
}

// Color overrides the terminal autodetection for both streams.
func (c *Config) Color(mode ColorMode) *Config {
	c.colorMode = mode
	return c
}

// Output redirects the two streams away from os.Stdout and os.Stderr. With
// ColorAuto, a replacement stream is only colored when it is an *os.File
// attached to a terminal.
func (c *Config) Output(stdout, stderr io.Writer) *Config {
	c.stdout = stdout
	c.stderr = stderr
	return c
}

// Dispatch consumes the configuration and assembles the dispatch tree: a
// root holding the level policy, with one branch writing Info-and-above
// records to stdout and one writing Debug and Trace records to stderr. Both
// branches share a single output mutex so concurrently rendered lines are
// never interleaved, even across the two streams.
func (c *Config) Dispatch() *logx.Dispatch {
	outW, errW := c.stdout, c.stderr
	if outW == nil {
		outW = os.Stdout
	}
	if errW == nil {
		errW = os.Stderr
	}

	mu := &sync.Mutex{}

	stdout := logx.NewDispatch().
		Filter(func(r *logx.Record) bool { return r.Level <= logx.InfoLevel }).
		Format(c.formatter(c.colored(outW))).
		Chain(&lockedWriter{mu: mu, w: outW})

	stderr := logx.NewDispatch().
		Filter(func(r *logx.Record) bool { return r.Level > logx.InfoLevel }).
		Format(c.formatter(c.colored(errW))).
		Chain(&lockedWriter{mu: mu, w: errW})

	base := logx.FilterOff
	if c.level >= logx.DebugLevel {
		base = logx.FilterWarn
	}

	return logx.NewDispatch().
		Level(base).
		LevelFor(c.module, c.level.Filter()).
		ChainDispatch(stdout).
		ChainDispatch(stderr)
}

// Build consumes the configuration and installs the assembled dispatch as
// the process-wide logger. It fails with logx.ErrAlreadyInstalled when a
// dispatch was applied earlier in the process lifetime.
func (c *Config) Build() error {
	return c.Dispatch().Apply()
}

// Init installs console logging for the named module at the given level,
// with default labels and automatic color detection.
func Init(module string, level logx.Level) error {
	return New(module, level).Build()
}

func (c *Config) colored(w io.Writer) bool {
	switch c.colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
