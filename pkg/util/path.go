package util

import (
	"os"
	"path/filepath"
	"strings"
)

func FileExists(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}

// ExpandPath resolves a leading "~" to the current user's home directory.
func ExpandPath(p string) (string, error) {
	if strings.HasPrefix(p, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if p == "~" {
			return home, nil
		}
		trimmed := strings.TrimPrefix(p, "~")
		trimmed = strings.TrimPrefix(trimmed, string(os.PathSeparator))
		return filepath.Join(home, trimmed), nil
	}
	return p, nil
}
