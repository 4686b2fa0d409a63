package consolex

import (
	"sync"

	"github.com/Abraxas-365/termlogx/logx"
)

// contextSlot is the process-wide context holder. At most one context is
// active at a time.
var contextSlot struct {
	mu     sync.Mutex
	active bool
	min    logx.Level
	prefix string
}

// Context is the scope guard for an active logging context. Close it when
// the scope ends, typically with defer, so the prefix is cleared on every
// exit path.
type Context struct {
	once sync.Once
}

// OpenContext activates the context prefix "[name] " on every rendered line
// until the returned guard is closed. Opening a second context while one is
// active is a usage error and panics: the holder supports one coarse-grained
// scope, such as the current request, at a time.
func OpenContext(name string) *Context {
	return OpenContextAt(logx.ErrorLevel, name)
}

// OpenContextAt is OpenContext with a visibility threshold: the prefix only
// appears when the configured maximum level is at least min. OpenContext
// uses ErrorLevel, which makes the prefix unconditional.
func OpenContextAt(min logx.Level, name string) *Context {
	contextSlot.mu.Lock()
	defer contextSlot.mu.Unlock()

	if contextSlot.active {
		panic("consolex: an attempt to open a nested logging context")
	}

	contextSlot.active = true
	contextSlot.min = min
	contextSlot.prefix = "[" + name + "] "
	return &Context{}
}

// Close clears the context slot. Calling it more than once is harmless; the
// slot is cleared exactly once per guard.
func (c *Context) Close() {
	c.once.Do(func() {
		contextSlot.mu.Lock()
		defer contextSlot.mu.Unlock()
		contextSlot.active = false
		contextSlot.min = logx.ErrorLevel
		contextSlot.prefix = ""
	})
}

// contextPrefix returns the active prefix when the given level meets the
// context's visibility threshold, else the empty string. Absence of a
// context is not an error.
func contextPrefix(level logx.Level) string {
	contextSlot.mu.Lock()
	defer contextSlot.mu.Unlock()

	if contextSlot.active && level >= contextSlot.min {
		return contextSlot.prefix
	}
	return ""
}
