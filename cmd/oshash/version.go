package main

import (
	"fmt"
	"runtime"
)

// Build metadata, intended to be injected at build time via -ldflags.
var (
	version = ""
	commit  = ""
)

// versionString formats build metadata for --version output, with sensible
// defaults when build flags were not provided.
func versionString() string {
	v := version
	if v == "" {
		v = "dev"
	}

	c := commit
	if c == "" {
		c = "unknown"
	}

	return fmt.Sprintf("%s (commit %s, %s, %s/%s)", v, c, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
