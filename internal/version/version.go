package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/HumanBot000/BoilerGen/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/HumanBot000/BoilerGen/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/HumanBot000/BoilerGen/internal/version.Date={{.Date}}
)

// String renders the build information for `boilergen --version`
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
