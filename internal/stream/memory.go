// Package stream defines the byte stream boundary used by the snapshot
// serializer.
package stream

import (
	"bytes"
	"io"
)

// Buffer is an in-memory Writer. It adds no framing: Bytes returns exactly
// the protocol bytes written between Begin and End.
type Buffer struct {
	buf bytes.Buffer
}

// NewBuffer creates an empty in-memory write stream.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Begin implements Writer.
func (b *Buffer) Begin() error { return nil }

// Write implements Writer.
func (b *Buffer) Write(p []byte) error {
	_, err := b.buf.Write(p)
	return err
}

// End implements Writer.
func (b *Buffer) End() error { return nil }

// Bytes returns the written bytes.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// BufferReader is an in-memory Reader over a byte slice.
type BufferReader struct {
	r *bytes.Reader
}

// NewBufferReader creates a read stream over data.
func NewBufferReader(data []byte) *BufferReader {
	return &BufferReader{r: bytes.NewReader(data)}
}

// Begin implements Reader.
func (r *BufferReader) Begin() error { return nil }

// Read implements Reader. A short read is a fault: it surfaces as
// io.ErrUnexpectedEOF, even when no byte could be read at all.
func (r *BufferReader) Read(p []byte) error {
	if _, err := io.ReadFull(r.r, p); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// End implements Reader.
func (r *BufferReader) End() error { return nil }

// Remaining returns the number of unread bytes. Used by diagnostics and
// tests to verify how far a reader consumed the stream.
func (r *BufferReader) Remaining() int {
	return r.r.Len()
}
