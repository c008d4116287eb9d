package version

import (
	"fmt"
	"runtime"
	"time"
)

var (
	Version   = "dev"                           // ex: v0.1.0
	Commit    = "none"                          // ex: abcd123
	BuildDate = time.Now().Format(time.RFC3339) // ex: 2026-03-11T18:42:00Z
	GoVersion = runtime.Version()               // go version
)

// String is the one-line banner printed at startup.
func String() string {
	return fmt.Sprintf("snip %s (commit=%s, built=%s, go=%s)", Version, Commit, BuildDate, GoVersion)
}
