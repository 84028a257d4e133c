package utils

import (
	"os"
)

// DirExists reports whether name exists and is a directory.
func DirExists(name string) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	return info.IsDir()
}
