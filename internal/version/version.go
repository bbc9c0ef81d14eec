package version

// Set via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	Package = "storbar"
	RepoUrl = "https://github.com/redjax/storbar"
)

type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
}

// GetPackageInfo returns a struct with information about the current package
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}
}
