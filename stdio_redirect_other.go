//go:build !unix

package main

import "os"

// Without dup2 only Go-level writes are captured; panic traces still reach
// the original stderr.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := openStdioLog(path)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
