package buildinfo

import "fmt"

// Set through -ldflags "-X github.com/cwbudde/algo-blackbody/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("blackbody %s (commit=%s, date=%s)", Version, Commit, Date)
}
