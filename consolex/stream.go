package consolex

import (
	"io"
	"sync"
)

// lockedWriter serializes writes to a stream under a mutex shared between
// the stdout and stderr branches, so a rendered line is never split or
// interleaved with a line headed for the other stream.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

type flusher interface {
	Flush() error
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	n, err = lw.w.Write(p)

	// Best-effort flush for buffered destinations. os.Stdout and os.Stderr
	// are unbuffered in Go, so for them the lock alone keeps lines whole.
	if f, ok := lw.w.(flusher); ok {
		f.Flush()
	}
	return n, err
}
