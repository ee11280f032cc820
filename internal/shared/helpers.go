// Package shared provides small helpers used across the rosdep-sources
// packages.
package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// ExpandHome replaces a leading "~" with the user's home directory. Paths
// without it are returned cleaned but otherwise unchanged.
func ExpandHome(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Clean(trimmed)
		}
		return filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	if trimmed == "" {
		return ""
	}
	return filepath.Clean(trimmed)
}
