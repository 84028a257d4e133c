package main

import "fmt"

var (
	// Version is the release version, set with -ldflags at build time.
	Version = "0.1.0"

	// Commit is the git commit the binary was built from.
	Commit = "HEAD"
)

// FullVersion returns the version including the commit.
func FullVersion() string {
	return fmt.Sprintf("%s@%s", Version, Commit)
}
