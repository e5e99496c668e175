package generate

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileHash returns a content digest for path in the form "sha256:<hex>".
//
// A missing file hashes to the sentinel "absent:<path>", which can never
// equal a real digest and differs between distinct missing paths, so a
// missing target always compares as changed.
func FileHash(path string) (string, error) {
	f, err := os.Open(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return "absent:" + path, nil
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
}
