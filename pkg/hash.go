package oshash

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Algorithm constants. These are fixed by the OSHash format: changing either
// changes every digest the package produces.
const (
	// ChunkSize is the number of bytes hashed from each end of the resource.
	ChunkSize = 65536

	// MinFileSize is the smallest resource the algorithm accepts. Anything
	// smaller cannot supply two full chunks and is rejected before any read.
	MinFileSize = 2 * ChunkSize
)

// ErrFileTooSmall is returned when the hashed resource is smaller than
// MinFileSize. It is always raised before any read or seek occurs.
var ErrFileTooSmall = errors.New("file size too small")

// windowReader reads exactly len(buf) bytes starting at absolute offset off.
// It is the only capability the digest engine needs, which keeps the engine
// testable against in-memory buffers.
type windowReader interface {
	readWindow(off int64, buf []byte) error
}

// readerAtWindows serves windows from an io.ReaderAt.
type readerAtWindows struct {
	r io.ReaderAt
}

func (w readerAtWindows) readWindow(off int64, buf []byte) error {
	n, err := w.r.ReadAt(buf, off)
	if n == len(buf) {
		// ReadAt may return io.EOF alongside a full read at end of file.
		return nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("failed to read %d bytes at offset %d: %w", len(buf), off, err)
}

// seekWindows serves windows from an io.ReadSeeker via seek-then-read.
type seekWindows struct {
	rs io.ReadSeeker
}

func (w seekWindows) readWindow(off int64, buf []byte) error {
	if _, err := w.rs.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to offset %d: %w", off, err)
	}
	if _, err := io.ReadFull(w.rs, buf); err != nil {
		return fmt.Errorf("failed to read %d bytes at offset %d: %w", len(buf), off, err)
	}
	return nil
}

// hashWindows computes the digest for a resource of the given total size,
// fetching the head and tail chunks through r. The window order is fixed:
// head chunk first, then tail chunk, and reordering them changes the digest.
// One scratch buffer is reused for both chunks.
func hashWindows(size uint64, r windowReader) (string, error) {
	if size < MinFileSize {
		return "", ErrFileTooSmall
	}

	acc := size
	buf := make([]byte, ChunkSize)

	if err := r.readWindow(0, buf); err != nil {
		return "", err
	}
	acc = accumulate(acc, buf)

	if err := r.readWindow(int64(size)-ChunkSize, buf); err != nil {
		return "", err
	}
	acc = accumulate(acc, buf)

	return formatDigest(acc), nil
}

// accumulate folds buf into acc eight bytes at a time, interpreting each
// chunk as a little-endian uint64. The reference implementation masks the
// accumulator to 64 bits after every addition; Go's uint64 wraparound
// arithmetic gives the identical result.
func accumulate(acc uint64, buf []byte) uint64 {
	for i := 0; i+8 <= len(buf); i += 8 {
		acc += binary.LittleEndian.Uint64(buf[i:])
	}
	return acc
}

// formatDigest renders the accumulator as lowercase hex, zero-padded to
// exactly 16 characters.
func formatDigest(acc uint64) string {
	return fmt.Sprintf("%016x", acc)
}

// HashReaderAt hashes a resource addressed through r with the given total
// size in bytes. ReadAt carries no seek state, so unlike HashReadSeeker
// there is no position to preserve and concurrent calls over the same
// ReaderAt are safe.
func HashReaderAt(r io.ReaderAt, size uint64) (string, error) {
	return hashWindows(size, readerAtWindows{r})
}
