// Package fs provides file system helpers for the application's data
// directory (logs, history database).
package fs

import (
	"fmt"
	"os"
)

// EnsureDataDir checks that the data directory exists and is writable,
// creating it (with 0755 permissions) when missing.
func EnsureDataDir(path string) error {
	info, err := os.Stat(path)

	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to check data directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("data path exists but is not a directory: %s", path)
	}

	if info.Mode().Perm()&0200 == 0 {
		return fmt.Errorf("insufficient permissions to write to data directory: %s", path)
	}

	return nil
}
