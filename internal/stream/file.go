// Package stream defines the byte stream boundary used by the snapshot
// serializer.
package stream

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"
)

// Magic bytes identify snapshot files.
var magicBytes = []byte("HSNPSNAP")

const checksumSize = 32

// FileWriter writes a snapshot payload to a file. Begin writes the magic
// bytes, every payload byte feeds a sha256, and End appends the checksum
// trailer and syncs the file. The trailer covers magic plus payload and is
// not part of the hashed region itself.
type FileWriter struct {
	f     *os.File
	hash  hash.Hash
	w     io.Writer
	began bool
	ended bool
	sum   []byte
}

// NewFileWriter creates path (truncating an existing file) and returns a
// write stream over it. The caller owns Close.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("stream: create %s: %w", path, err)
	}
	h := sha256.New()
	return &FileWriter{
		f:    f,
		hash: h,
		w:    io.MultiWriter(f, h),
	}, nil
}

// Begin implements Writer. The first call writes the magic bytes; later
// calls are no-ops.
func (w *FileWriter) Begin() error {
	if w.began {
		return nil
	}
	if _, err := w.w.Write(magicBytes); err != nil {
		return fmt.Errorf("stream: write magic: %w", err)
	}
	w.began = true
	return nil
}

// Write implements Writer.
func (w *FileWriter) Write(p []byte) error {
	if !w.began {
		return fmt.Errorf("stream: write before Begin")
	}
	if _, err := w.w.Write(p); err != nil {
		return fmt.Errorf("stream: write: %w", err)
	}
	return nil
}

// End implements Writer: appends the checksum trailer and syncs.
func (w *FileWriter) End() error {
	if w.ended {
		return nil
	}
	w.sum = w.hash.Sum(nil)
	if _, err := w.f.Write(w.sum); err != nil {
		return fmt.Errorf("stream: write checksum: %w", err)
	}
	if err := w.f.Sync(); err != nil {
		return fmt.Errorf("stream: sync: %w", err)
	}
	w.ended = true
	return nil
}

// Checksum returns the trailer written by End, nil before End.
func (w *FileWriter) Checksum() []byte {
	return w.sum
}

// Close closes the underlying file.
func (w *FileWriter) Close() error {
	return w.f.Close()
}

// FileReader reads a snapshot payload from a file. Begin verifies the
// checksum trailer over the whole payload and the magic bytes before any
// payload byte is served, so a corrupt file fails before replay starts.
type FileReader struct {
	f     *os.File
	br    *bufio.Reader
	began bool
	sum   []byte
}

// NewFileReader opens path for reading. The caller owns Close.
func NewFileReader(path string) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stream: open %s: %w", path, err)
	}
	return &FileReader{f: f}, nil
}

// Begin implements Reader: validates size, trailer and magic. Idempotent.
func (r *FileReader) Begin() error {
	if r.began {
		return nil
	}

	stat, err := r.f.Stat()
	if err != nil {
		return fmt.Errorf("stream: stat: %w", err)
	}
	if stat.Size() < int64(len(magicBytes))+checksumSize {
		return ErrChecksumMismatch
	}
	payloadLen := stat.Size() - checksumSize

	expected := make([]byte, checksumSize)
	if _, err := io.ReadFull(io.NewSectionReader(r.f, payloadLen, checksumSize), expected); err != nil {
		return fmt.Errorf("stream: read checksum: %w", err)
	}
	h := sha256.New()
	if _, err := io.CopyN(h, io.NewSectionReader(r.f, 0, payloadLen), payloadLen); err != nil {
		return fmt.Errorf("stream: hash payload: %w", err)
	}
	if !bytes.Equal(h.Sum(nil), expected) {
		return ErrChecksumMismatch
	}

	br := bufio.NewReader(io.NewSectionReader(r.f, 0, payloadLen))
	magic := make([]byte, len(magicBytes))
	if _, err := io.ReadFull(br, magic); err != nil {
		return fmt.Errorf("stream: read magic: %w", err)
	}
	if !bytes.Equal(magic, magicBytes) {
		return ErrInvalidMagic
	}

	r.br = br
	r.sum = expected
	r.began = true
	return nil
}

// Read implements Reader. A short read surfaces as io.ErrUnexpectedEOF.
func (r *FileReader) Read(p []byte) error {
	if !r.began {
		return fmt.Errorf("stream: read before Begin")
	}
	if _, err := io.ReadFull(r.br, p); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// End implements Reader.
func (r *FileReader) End() error { return nil }

// Checksum returns the verified trailer, nil before Begin.
func (r *FileReader) Checksum() []byte {
	return r.sum
}

// Close closes the underlying file.
func (r *FileReader) Close() error {
	return r.f.Close()
}
