// Package artifact computes content digests of build artifacts so the
// launcher can tell whether a build actually produced a new binary.
package artifact

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// FileOpener abstracts file access for testability.
type FileOpener interface {
	Open(name string) (io.ReadCloser, error)
}

// RealFileOpener implements FileOpener using the real filesystem.
type RealFileOpener struct{}

func (r *RealFileOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Digest returns the hex-encoded BLAKE3 digest of the named file.
func Digest(opener FileOpener, path string) (string, error) {
	f, err := opener.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// File is a convenience wrapper over Digest using the real filesystem.
func File(path string) (string, error) {
	return Digest(&RealFileOpener{}, path)
}

// Short truncates a digest for display. Full digests are noise in
// diagnostic output.
func Short(digest string) string {
	if len(digest) <= 12 {
		return digest
	}
	return digest[:12]
}
