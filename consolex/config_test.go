package consolex

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/termlogx/logx"
)

// testDispatch assembles a console dispatch writing into buffers instead of
// the real streams, and a caller-less logger bound to it.
func testDispatch(config *Config) (*logx.Logger, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	d := config.Color(ColorNever).Output(stdout, stderr).Dispatch()
	log := logx.Named(config.module).WithDispatch(d).WithCaller(false)
	return log, stdout, stderr
}

func TestStreamRouting(t *testing.T) {
	log, stdout, stderr := testDispatch(New("app", logx.TraceLevel))

	log.Error("an error")
	log.Warn("a warning")
	log.Info("some info")
	log.Debug("some detail")
	log.Trace("a trace")

	// Error, Warn and Info always land on stdout; Debug and Trace on stderr.
	assert.Contains(t, stdout.String(), "an error")
	assert.Contains(t, stdout.String(), "a warning")
	assert.Contains(t, stdout.String(), "some info")
	assert.NotContains(t, stdout.String(), "some detail")
	assert.NotContains(t, stdout.String(), "a trace")

	assert.Contains(t, stderr.String(), "some detail")
	assert.Contains(t, stderr.String(), "a trace")
	assert.NotContains(t, stderr.String(), "an error")
	assert.NotContains(t, stderr.String(), "a warning")
	assert.NotContains(t, stderr.String(), "some info")
}

func TestModuleFilterSuppression(t *testing.T) {
	levels := []logx.Level{logx.ErrorLevel, logx.WarnLevel, logx.InfoLevel, logx.DebugLevel, logx.TraceLevel}

	for _, max := range levels {
		for _, at := range levels {
			log, stdout, stderr := testDispatch(New("app", max))

			message := fmt.Sprintf("record at %s under max %s", at, max)
			switch at {
			case logx.ErrorLevel:
				log.Error("%s", message)
			case logx.WarnLevel:
				log.Warn("%s", message)
			case logx.InfoLevel:
				log.Info("%s", message)
			case logx.DebugLevel:
				log.Debug("%s", message)
			case logx.TraceLevel:
				log.Trace("%s", message)
			}

			output := stdout.String() + stderr.String()
			if at <= max {
				assert.Contains(t, output, message)
			} else {
				assert.Empty(t, output, "record at %s must be suppressed under max %s", at, max)
			}
		}
	}
}

func TestGlobalDefaultForOtherModules(t *testing.T) {
	t.Run("verbose config allows Warn and above from anyone", func(t *testing.T) {
		stdout := new(bytes.Buffer)
		stderr := new(bytes.Buffer)
		d := New("app", logx.DebugLevel).Color(ColorNever).Output(stdout, stderr).Dispatch()

		other := logx.Named("elsewhere").WithDispatch(d).WithCaller(false)
		other.Error("their error")
		other.Warn("their warning")
		other.Info("their info")
		other.Debug("their detail")

		combined := stdout.String() + stderr.String()
		assert.Contains(t, combined, "their error")
		assert.Contains(t, combined, "their warning")
		assert.NotContains(t, combined, "their info")
		assert.NotContains(t, combined, "their detail")
	})

	t.Run("coarse config suppresses other modules entirely", func(t *testing.T) {
		config := New("app", logx.InfoLevel)
		stdout := new(bytes.Buffer)
		stderr := new(bytes.Buffer)
		d := config.Color(ColorNever).Output(stdout, stderr).Dispatch()

		other := logx.Named("elsewhere").WithDispatch(d).WithCaller(false)
		other.Error("their error")
		other.Info("their info")

		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())
	})
}

func TestBuildInstallsOnce(t *testing.T) {
	defer logx.Reset()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	require.NoError(t, New("app", logx.InfoLevel).Color(ColorNever).Output(stdout, stderr).Build())

	err := Init("app", logx.InfoLevel)
	assert.ErrorIs(t, err, logx.ErrAlreadyInstalled)
}

func TestConcurrentLinesStayWhole(t *testing.T) {
	const goroutines = 8
	const messages = 50

	log, stdout, _ := testDispatch(New("app", logx.InfoLevel))

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for m := 0; m < messages; m++ {
				log.Info("goroutine %d message %d", g, m)
			}
		}(g)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, goroutines*messages)

	seen := make(map[string]int)
	for _, line := range lines {
		// Every line must be one of the expected renderings, byte for byte.
		assert.Regexp(t, `^I: goroutine \d+ message \d+$`, line)
		seen[line]++
	}
	for g := 0; g < goroutines; g++ {
		for m := 0; m < messages; m++ {
			assert.Equal(t, 1, seen[fmt.Sprintf("I: goroutine %d message %d", g, m)])
		}
	}
}

func TestOutputDefaultsAndColorAuto(t *testing.T) {
	// Buffers are not terminals, so ColorAuto must not emit escapes.
	log, stdout, stderr := func() (*logx.Logger, *bytes.Buffer, *bytes.Buffer) {
		out := new(bytes.Buffer)
		errBuf := new(bytes.Buffer)
		d := New("app", logx.TraceLevel).Output(out, errBuf).Dispatch()
		return logx.Named("app").WithDispatch(d).WithCaller(false), out, errBuf
	}()

	log.Error("plain")
	log.Trace("plain too")

	assert.NotContains(t, stdout.String(), "\x1b")
	assert.NotContains(t, stderr.String(), "\x1b")
}

func TestColorAlwaysOnStreams(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	d := New("app", logx.InfoLevel).Color(ColorAlways).Output(stdout, stderr).Dispatch()
	log := logx.Named("app").WithDispatch(d).WithCaller(false)

	log.Info("tinted")

	line := strings.TrimSuffix(stdout.String(), "\n")
	assert.True(t, strings.HasPrefix(line, "\x1b[32m"))
	assert.True(t, strings.HasSuffix(line, "\x1b[0m"))
}
