// Package oshash computes a fast partial-content fingerprint for a file:
// a 64-bit digest derived from the file's byte length plus its first and
// last 64KB, compatible with the OSHash algorithm described at
// https://pypi.org/project/oshash/. It is intended for media libraries and
// other large-file workloads where full-content hashing is too slow, under
// the assumption that any meaningful change to a file perturbs its size or
// its head/tail bytes.
//
// # Core API
//
// Hash a file by path:
//
//	digest, err := oshash.HashFile("/path/to/video.mkv")
//	if err != nil {
//		return err
//	}
//	fmt.Println(digest) // 16 lowercase hex characters
//
// Hash an already-open handle, preserving its seek position:
//
//	info, _ := file.Stat()
//	digest, err := oshash.HashReadSeeker(file, uint64(info.Size()))
//
// Hash through an io.ReaderAt (no seek state involved):
//
//	digest, err := oshash.HashReaderAt(bytes.NewReader(data), uint64(len(data)))
//
// # Errors
//
// Resources smaller than MinFileSize (128KB) are rejected with
// ErrFileTooSmall before any read occurs; use errors.Is to detect it.
// All other failures wrap the underlying I/O error, so errors.Is and
// errors.As see through to fs.ErrNotExist, *fs.PathError and friends.
//
// # Note on hash strength
//
// The digest is a plain wrapping sum and is trivially forgeable. It is a
// change-detection fingerprint, not a cryptographic hash; never use it
// where an attacker controls the file contents.
package oshash
