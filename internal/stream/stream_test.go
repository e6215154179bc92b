package stream

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func shaOf(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

func TestBufferRoundTrip(t *testing.T) {
	w := NewBuffer()
	if err := w.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := w.Write([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if !bytes.Equal(w.Bytes(), []byte{1, 2, 3}) {
		t.Fatalf("Bytes = %v, want [1 2 3]", w.Bytes())
	}

	r := NewBufferReader(w.Bytes())
	if err := r.Begin(); err != nil {
		t.Fatalf("reader Begin: %v", err)
	}
	got := make([]byte, 3)
	if err := r.Read(got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("Read = %v, want [1 2 3]", got)
	}
}

func TestBufferReaderShortRead(t *testing.T) {
	r := NewBufferReader([]byte{1, 2})
	buf := make([]byte, 4)
	if err := r.Read(buf); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Read past end = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestBufferReaderExhausted(t *testing.T) {
	r := NewBufferReader(nil)
	buf := make([]byte, 1)
	if err := r.Read(buf); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Read on empty = %v, want io.ErrUnexpectedEOF", err)
	}
}

func writeFilePayload(t *testing.T, path string, payload []byte) {
	t.Helper()
	w, err := NewFileWriter(path)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	defer w.Close()
	if err := w.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := w.Write(payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.snap")
	payload := []byte("snapshot payload")
	writeFilePayload(t, path, payload)

	r, err := NewFileReader(path)
	if err != nil {
		t.Fatalf("NewFileReader: %v", err)
	}
	defer r.Close()
	if err := r.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	got := make([]byte, len(payload))
	if err := r.Read(got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %q, want %q", got, payload)
	}
	if err := r.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

func TestFileBeginIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.snap")
	writeFilePayload(t, path, []byte{9})

	r, err := NewFileReader(path)
	if err != nil {
		t.Fatalf("NewFileReader: %v", err)
	}
	defer r.Close()
	if err := r.Begin(); err != nil {
		t.Fatalf("first Begin: %v", err)
	}
	if err := r.Begin(); err != nil {
		t.Fatalf("second Begin: %v", err)
	}
	got := make([]byte, 1)
	if err := r.Read(got); err != nil || got[0] != 9 {
		t.Fatalf("Read = (%v, %v), want (9, nil)", got, err)
	}
}

func TestFileCorruptedTrailer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.snap")
	writeFilePayload(t, path, []byte("data"))

	// Flip a payload byte after the magic.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	raw[len(magicBytes)] ^= 0xFF
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r, err := NewFileReader(path)
	if err != nil {
		t.Fatalf("NewFileReader: %v", err)
	}
	defer r.Close()
	if err := r.Begin(); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("Begin = %v, want ErrChecksumMismatch", err)
	}
}

func TestFileInvalidMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.snap")

	// A file framed correctly at the checksum level but with wrong magic.
	payload := append([]byte("NOTMAGIC"), 1, 2, 3)
	h := shaOf(payload)
	if err := os.WriteFile(path, append(payload, h...), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r, err := NewFileReader(path)
	if err != nil {
		t.Fatalf("NewFileReader: %v", err)
	}
	defer r.Close()
	if err := r.Begin(); !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("Begin = %v, want ErrInvalidMagic", err)
	}
}

func TestFileTooSmall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.snap")
	if err := os.WriteFile(path, []byte("tiny"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r, err := NewFileReader(path)
	if err != nil {
		t.Fatalf("NewFileReader: %v", err)
	}
	defer r.Close()
	if err := r.Begin(); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("Begin = %v, want ErrChecksumMismatch", err)
	}
}
