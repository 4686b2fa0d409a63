package consolex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abraxas-365/termlogx/logx"
)

func TestContextPrefixOnRenderedLines(t *testing.T) {
	log, stdout, _ := testDispatch(New("app", logx.InfoLevel))

	ctx := OpenContext("req-42")
	log.Info("inside the scope")
	ctx.Close()
	log.Info("outside the scope")

	lines := stdout.String()
	assert.Contains(t, lines, "I: [req-42] inside the scope")
	assert.Contains(t, lines, "I: outside the scope")
	assert.NotContains(t, lines, "[req-42] outside the scope")
}

func TestNestedContextPanics(t *testing.T) {
	ctx := OpenContext("outer")
	defer ctx.Close()

	assert.Panics(t, func() {
		OpenContext("inner")
	})
}

func TestContextCloseIsIdempotent(t *testing.T) {
	ctx := OpenContext("once")
	ctx.Close()
	ctx.Close()

	// The slot must be free again after the first Close.
	next := OpenContext("again")
	defer next.Close()

	assert.Equal(t, "[again] ", contextPrefix(logx.TraceLevel))
}

func TestContextClearsOnEveryExitPath(t *testing.T) {
	func() {
		defer func() { recover() }()
		ctx := OpenContext("scoped")
		defer ctx.Close()
		panic("unwound")
	}()

	assert.Equal(t, "", contextPrefix(logx.TraceLevel))
}

func TestContextVisibilityThreshold(t *testing.T) {
	ctx := OpenContextAt(logx.DebugLevel, "verbose-only")
	defer ctx.Close()

	// Shown when the configured maximum level is at least as verbose as
	// the context minimum, hidden otherwise.
	assert.Equal(t, "[verbose-only] ", contextPrefix(logx.TraceLevel))
	assert.Equal(t, "[verbose-only] ", contextPrefix(logx.DebugLevel))
	assert.Equal(t, "", contextPrefix(logx.InfoLevel))
	assert.Equal(t, "", contextPrefix(logx.ErrorLevel))
}

func TestContextAbsenceIsNotAnError(t *testing.T) {
	assert.Equal(t, "", contextPrefix(logx.TraceLevel))
}
