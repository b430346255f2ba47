package oshash

import (
	"fmt"
	"io"
	"os"
)

// HashFile hashes the file at path and returns the 16-character lowercase
// hex digest. The file's size is taken from filesystem metadata; only the
// first and last ChunkSize bytes are ever read.
//
// Files smaller than MinFileSize return ErrFileTooSmall. Open, stat, seek
// and read failures are wrapped and surface the underlying error to
// errors.Is and errors.As.
func HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	return HashReadSeeker(file, uint64(info.Size()))
}

// HashReadSeeker hashes an already-open resource through rs. The caller
// supplies size because a ReadSeeker carries no length of its own; it is
// not re-derived from the stream.
//
// On success the stream's seek position is restored to whatever it was when
// the call began, so a handle mid-read elsewhere can be fingerprinted
// without disturbing its consumer. If a seek or read fails partway through,
// the position is NOT restored; treat the stream as tainted after any error
// from this function, or snapshot the position externally.
//
// Seeking is stateful, so the caller must guarantee exclusive access to rs
// for the duration of the call. Distinct handles may be hashed from
// concurrent goroutines freely.
func HashReadSeeker(rs io.ReadSeeker, size uint64) (string, error) {
	// Reject before touching the stream: a too-small resource must leave
	// the position exactly where it was.
	if size < MinFileSize {
		return "", ErrFileTooSmall
	}

	saved, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", fmt.Errorf("failed to query stream position: %w", err)
	}

	digest, err := hashWindows(size, seekWindows{rs})
	if err != nil {
		return "", err
	}

	if _, err := rs.Seek(saved, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to restore stream position: %w", err)
	}

	return digest, nil
}
