package fsops

import (
	"os"

	"github.com/pkg/errors"
)

// ReadFile reads the whole file at path. Missing files surface as an error
// satisfying errors.Is(err, os.ErrNotExist) so callers can treat them as empty.
func ReadFile(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}
	return os.ReadFile(path)
}
