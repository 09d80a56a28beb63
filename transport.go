package uprint

import (
	"bytes"
	"io"
)

// Transport is the byte sink lines are written to. Writes are
// fire-and-forget: a transport that can fail keeps the failure to itself
// (see [Writer]).
type Transport interface {
	PutChar(c byte)
	PutString(s string)
}

// CharFunc adapts a single-byte primitive, such as a UART transmit routine,
// into a [Transport]. PutString sends one byte at a time.
type CharFunc func(c byte)

func (f CharFunc) PutChar(c byte) { f(c) }

func (f CharFunc) PutString(s string) {
	for i := 0; i < len(s); i++ {
		f(s[i])
	}
}

// Buffer is an in-memory [Transport]. The zero value is ready to use.
type Buffer struct {
	buf bytes.Buffer
}

func (b *Buffer) PutChar(c byte) { _ = b.buf.WriteByte(c) }

func (b *Buffer) PutString(s string) { _, _ = b.buf.WriteString(s) }

// String returns everything written since the last [Buffer.Reset].
func (b *Buffer) String() string { return b.buf.String() }

// Bytes returns everything written since the last [Buffer.Reset]. The slice
// is only valid until the next write.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return b.buf.Len() }

// Reset empties the buffer.
func (b *Buffer) Reset() { b.buf.Reset() }

// Writer adapts an [io.Writer] into a [Transport]. The first write error is
// kept and every later write is dropped.
type Writer struct {
	w   io.Writer
	one [1]byte
	err error
}

// NewWriter returns a [Writer] writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) PutChar(c byte) {
	if w.err != nil {
		return
	}
	if bw, ok := w.w.(io.ByteWriter); ok {
		w.err = bw.WriteByte(c)
		return
	}
	w.one[0] = c
	_, w.err = w.w.Write(w.one[:])
}

func (w *Writer) PutString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }
