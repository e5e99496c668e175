package generate

import (
	"errors"
	"io/fs"
	"os"

	"github.com/aymanbagabas/go-udiff"
)

// unifiedDiff produces a unified diff between the target file and the staged
// replacement. A missing target diffs as an empty file so that fresh
// generation shows every line as added.
func unifiedDiff(targetPath, stagingPath string) (string, error) {
	before, err := os.ReadFile(targetPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	after, err := os.ReadFile(stagingPath)
	if err != nil {
		return "", err
	}
	return udiff.Unified(targetPath, stagingPath, string(before), string(after)), nil
}
