// Package consolex configures human-oriented console logging on top of the
// logx dispatch framework: level labels, optional timestamps and source
// locations, ANSI coloring on interactive terminals, and a process-wide
// context prefix active for a dynamic scope.
//
// Basic Usage:
//
//	if err := consolex.Init("myapp", logx.InfoLevel); err != nil {
//		// a logger was already installed
//	}
//
//	logx.SetModule("myapp")
//	logx.Info("listening on port %d", 8080)
//
// Records at Info level and above (Error, Warn, Info) go to stdout; Debug
// and Trace records go to stderr. The named module is filtered at exactly
// the configured level. When the level is DebugLevel or more verbose, other
// modules are allowed through at WarnLevel and above; otherwise everything
// outside the named module is suppressed.
//
// Rendering:
//
// At DebugLevel and more verbose, lines carry a millisecond timestamp and a
// fixed-width source column:
//
//	[15:04:05.000] [ server.go:042] D: accepted connection
//
// At coarser levels the line is just label, context and message:
//
//	I: accepted connection
//
// Customization goes through the builder:
//
//	err := consolex.New("myapp", logx.InfoLevel).
//		Minimal().             // drop the "I: " style labels
//		Color(consolex.ColorNever).
//		Build()
//
// Context scopes:
//
// A context prepends "[name] " to every line while its guard is open:
//
//	ctx := consolex.OpenContext("req-9f3a")
//	defer ctx.Close()
//
// Only one context may be active at a time; opening a second one panics.
//
// Environment:
//
// FromEnv builds a Config from LOG_MODULE, LOG_LEVEL and LOG_COLOR for
// programs that prefer environment-driven setup. The package itself never
// reads the environment implicitly.
package consolex
