package version

// Version is the current release of heist-commitlint. Release builds override
// it with -ldflags "-X github.com/youniqx/heist-commitlint/internal/version.Version=...".
var Version = "0.1.0"

// FullVersion returns the version with the v prefix
func FullVersion() string {
	return "v" + Version
}
