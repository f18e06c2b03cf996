package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// openStdioLog opens the stdio capture file for appending, creating its
// directory first.
func openStdioLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create stdio log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open stdio log")
	}
	return f, nil
}
