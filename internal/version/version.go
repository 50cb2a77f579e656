package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/mpontes/stowaway/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/mpontes/stowaway/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/mpontes/stowaway/internal/version.Date={{.Date}}
)
