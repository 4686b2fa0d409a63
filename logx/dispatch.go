package logx

import (
	"errors"
	"io"
	"sync"
)

// ErrAlreadyInstalled is returned by Apply when a dispatch has already been
// installed as the process-wide logger.
var ErrAlreadyInstalled = errors.New("logx: a dispatch is already installed")

// FormatFunc renders a record into a single output line (without newline).
type FormatFunc func(r *Record) string

// FilterFunc decides whether a record passes a dispatch stage.
type FilterFunc func(r *Record) bool

// Handler receives records that survived filtering. A Dispatch is itself a
// Handler, so dispatches can be nested.
type Handler interface {
	Handle(r *Record)
}

// Dispatch routes log records through level thresholds and filters into
// chained writers, handlers and sub-dispatches. Configure it with the
// builder methods, then either install it with Apply or hand records to it
// directly with Log.
type Dispatch struct {
	base     LevelFilter
	hasBase  bool
	modules  map[string]LevelFilter
	filters  []FilterFunc
	format   FormatFunc
	writers  []io.Writer
	handlers []Handler
	children []*Dispatch
}

// NewDispatch creates an empty dispatch that accepts every record
func NewDispatch() *Dispatch {
	return &Dispatch{}
}

// Level sets the default threshold applied to records from modules without
// an explicit override.
func (d *Dispatch) Level(f LevelFilter) *Dispatch {
	d.base = f
	d.hasBase = true
	return d
}

// LevelFor sets the threshold for a single module, overriding the default.
func (d *Dispatch) LevelFor(module string, f LevelFilter) *Dispatch {
	if d.modules == nil {
		d.modules = make(map[string]LevelFilter)
	}
	d.modules[module] = f
	return d
}

// Filter adds a predicate that records must pass to continue through this
// dispatch. Filters run after the level thresholds, in registration order.
func (d *Dispatch) Filter(fn FilterFunc) *Dispatch {
	d.filters = append(d.filters, fn)
	return d
}

// Format sets the rendering function used for chained writers. Without one,
// the raw record message is written.
func (d *Dispatch) Format(fn FormatFunc) *Dispatch {
	d.format = fn
	return d
}

// Chain adds an output writer. Each surviving record is rendered and written
// as one line; write errors are discarded so that logging never fails the
// host program.
func (d *Dispatch) Chain(w io.Writer) *Dispatch {
	d.writers = append(d.writers, w)
	return d
}

// ChainHandler adds a handler that receives surviving records unrendered.
func (d *Dispatch) ChainHandler(h Handler) *Dispatch {
	d.handlers = append(d.handlers, h)
	return d
}

// ChainDispatch adds a sub-dispatch. Records surviving this dispatch are
// offered to the child, which applies its own thresholds and filters.
func (d *Dispatch) ChainDispatch(child *Dispatch) *Dispatch {
	d.children = append(d.children, child)
	return d
}

// Log runs a record through the dispatch tree.
func (d *Dispatch) Log(r *Record) {
	if f, ok := d.modules[r.Module]; ok {
		if !f.Allows(r.Level) {
			return
		}
	} else if d.hasBase && !d.base.Allows(r.Level) {
		return
	}

	for _, fn := range d.filters {
		if !fn(r) {
			return
		}
	}

	if len(d.writers) > 0 {
		line := r.Message
		if d.format != nil {
			line = d.format(r)
		}
		for _, w := range d.writers {
			io.WriteString(w, line+"\n")
		}
	}

	for _, h := range d.handlers {
		h.Handle(r)
	}

	for _, child := range d.children {
		child.Log(r)
	}
}

// Handle implements Handler so a Dispatch can be chained into another one.
func (d *Dispatch) Handle(r *Record) {
	d.Log(r)
}

var (
	installMu sync.RWMutex
	installed *Dispatch
)

// Apply installs the dispatch as the process-wide logger used by the
// package-level logging functions. A dispatch installed earlier is never
// overridden: the call fails with ErrAlreadyInstalled instead.
func (d *Dispatch) Apply() error {
	installMu.Lock()
	defer installMu.Unlock()

	if installed != nil {
		return ErrAlreadyInstalled
	}
	installed = d
	return nil
}

// Installed returns the process-wide dispatch, or nil if none was applied.
func Installed() *Dispatch {
	installMu.RLock()
	defer installMu.RUnlock()
	return installed
}

// Reset removes the installed dispatch so another one can be applied. It is
// intended for tests; production code should install exactly once.
func Reset() {
	installMu.Lock()
	defer installMu.Unlock()
	installed = nil
}
