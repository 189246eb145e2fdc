// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
)

// WriteTempFile creates a temporary file with the given content and
// extension. Returns the file path and a cleanup function to remove it.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	tmpFile, err := os.CreateTemp("", "nbscribe-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
