// Package safety keeps generated files inside the directory they were meant for.
package safety

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// PathError is a machine-readable rejection, rendered as compact JSON so it can be
// surfaced verbatim inside a tool result message.
type PathError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e PathError) Error() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// ResolveRoot makes dir absolute and resolves symlinks where possible so later
// boundary checks compare like with like. A dir that does not exist yet is
// returned in its absolute form.
func ResolveRoot(dir string) (string, error) {
	if dir == "" {
		return "", PathError{Code: "ERR_EMPTY_ROOT", Message: "root directory is empty"}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "abs(%s)", dir)
	}
	if r, err := filepath.EvalSymlinks(abs); err == nil {
		abs = r
	}
	return abs, nil
}

// ValidateRelPath resolves relPath against absRoot and returns an absolute path
// inside it. Absolute inputs, parent traversal, and symlink escapes are rejected
// with a PathError.
func ValidateRelPath(absRoot, relPath string) (string, error) {
	if filepath.IsAbs(relPath) {
		return "", PathError{Code: "ERR_PATH_OUTSIDE_ROOT", Message: "absolute paths are not allowed"}
	}

	cleaned := filepath.Clean(relPath)
	candidate := filepath.Join(absRoot, cleaned)

	// Resolve the whole candidate if it exists, otherwise its parent, so an
	// escape through a symlinked parent is still visible.
	if resolved, err := filepath.EvalSymlinks(candidate); err == nil {
		candidate = resolved
	} else {
		parent := filepath.Dir(candidate)
		if resolvedParent, err2 := filepath.EvalSymlinks(parent); err2 == nil {
			candidate = filepath.Join(resolvedParent, filepath.Base(candidate))
		}
	}

	rel, err := filepath.Rel(absRoot, candidate)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", PathError{Code: "ERR_PATH_OUTSIDE_ROOT", Message: "requested path resolves outside the root directory"}
	}
	return candidate, nil
}

// ValidateFileName is ValidateRelPath for a single path segment: names carrying
// a separator or naming the root itself are rejected.
func ValidateFileName(absRoot, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", PathError{Code: "ERR_INVALID_FILE_NAME", Message: "file name must be a single path segment"}
	}
	return ValidateRelPath(absRoot, name)
}
