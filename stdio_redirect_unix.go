//go:build unix

package main

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// redirectStdIO points fd 1 and 2 at path so runtime panic traces are
// captured alongside regular output.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := openStdioLog(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(std.Fd())); err != nil {
			return errors.Wrapf(err, "redirect %s", std.Name())
		}
	}
	return nil
}
