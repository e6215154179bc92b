// Package serializer implements the versioned snapshot protocol.
package serializer

import (
	"encoding/binary"
	"fmt"

	bytesbufferpool "github.com/datnguyenzzz/nogodb/lib/go-bytesbufferpool"

	"github.com/yndnr/hashsnap-go/internal/stream"
)

func writeUint8(w stream.Writer, v uint8) error {
	return w.Write([]byte{v})
}

func readUint8(r stream.Reader) (uint8, error) {
	var buf [1]byte
	if err := r.Read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func writeUint32(w stream.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return w.Write(buf[:])
}

func readUint32(r stream.Reader) (uint32, error) {
	var buf [4]byte
	if err := r.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// encodeRecord writes one key/value pair as two length-prefixed blocks.
// Zero-length blocks are legal.
func encodeRecord(w stream.Writer, key, value []byte) error {
	if err := writeUint32(w, uint32(len(key))); err != nil {
		return fmt.Errorf("serializer: write key length: %w", err)
	}
	if err := w.Write(key); err != nil {
		return fmt.Errorf("serializer: write key: %w", err)
	}
	if err := writeUint32(w, uint32(len(value))); err != nil {
		return fmt.Errorf("serializer: write value length: %w", err)
	}
	if err := w.Write(value); err != nil {
		return fmt.Errorf("serializer: write value: %w", err)
	}
	return nil
}

// scratch is a pooled reusable buffer for decoded blocks. Replay copies
// each block into table storage immediately, so one scratch per field
// serves the whole record loop.
//
// The pool caps buffers at its largest size class, so a block beyond it
// falls back to a plain allocation; pooled tracks which release path the
// current buffer needs.
type scratch struct {
	buf    []byte
	pooled bool
}

func (s *scratch) grow(n int) []byte {
	if cap(s.buf) < n {
		s.release()
		if buf := bytesbufferpool.Get(n); cap(buf) >= n {
			s.buf = buf
			s.pooled = true
		} else {
			bytesbufferpool.Put(buf)
			s.buf = make([]byte, n)
		}
	}
	s.buf = s.buf[:n]
	return s.buf
}

func (s *scratch) release() {
	if s.buf != nil && s.pooled {
		bytesbufferpool.Put(s.buf)
	}
	s.buf = nil
	s.pooled = false
}

// decodeBlock reads one length-prefixed block into the scratch buffer,
// sized exactly by the length field. A short read propagates unchanged.
func decodeBlock(r stream.Reader, s *scratch, what string) ([]byte, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("serializer: read %s length: %w", what, err)
	}
	buf := s.grow(int(n))
	if err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("serializer: read %s: %w", what, err)
	}
	return buf, nil
}
