package uprint

import (
	"iter"
	"sync"
)

// Logger serializes lines onto a shared [Transport]. Each call to
// [Logger.Print] holds the transport for the whole line, so lines from
// concurrent goroutines never interleave.
type Logger struct {
	mu sync.Mutex
	t  Transport
}

// NewLogger returns a Logger writing to t.
func NewLogger(t Transport) *Logger {
	return &Logger{t: t}
}

// Print renders args as one line. See [Print].
func (l *Logger) Print(args ...Renderer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	Print(l.t, args...)
}

// PrintSeq renders the arguments yielded by seq as one line. The lock is
// held until seq is exhausted.
func (l *Logger) PrintSeq(seq iter.Seq[Renderer]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	PrintSeq(l.t, seq)
}
