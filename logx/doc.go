// Package logx is a small log record dispatch framework: it filters records
// by level (a process default plus per-module overrides), runs them through
// optional predicate filters, renders them with a formatting callback, and
// delivers them to chained writers, handlers, or nested dispatches.
//
// The companion package consolex builds on logx to produce colored console
// output; logx itself has no opinion about formatting.
//
// Basic Usage:
//
//	d := logx.NewDispatch().
//		Level(logx.FilterWarn).
//		LevelFor("worker", logx.FilterTrace).
//		Format(func(r *logx.Record) string {
//			return r.Level.String() + " " + r.Message
//		}).
//		Chain(os.Stdout)
//
//	if err := d.Apply(); err != nil {
//		// a dispatch was already installed earlier in the process
//	}
//
//	logx.SetModule("worker")
//	logx.Info("worker started with %d queues", 4)
//
// Levels:
//
// Levels are ordered by severity: ErrorLevel is the most severe and
// TraceLevel the most verbose. A LevelFilter is a verbosity ceiling;
// FilterOff suppresses everything. Level.Filter() converts a level into the
// filter that admits exactly that level and everything more severe.
//
// Dispatch trees:
//
// A Dispatch is itself a Handler, so complex routing is composed by nesting:
// a root dispatch holds the level policy while children apply per-stream
// filters and formatting. Records are delivered synchronously on the calling
// goroutine; there are no queues or background workers.
//
// Install semantics:
//
// Apply installs a dispatch as the process-wide logger exactly once. A
// second Apply returns ErrAlreadyInstalled instead of silently replacing the
// earlier dispatch.
package logx
