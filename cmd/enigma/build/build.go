package build

// Set with -ldflags "-X github.com/sergeii/enigma/cmd/enigma/build.Version=..."
var (
	Version = "development"
	Commit  = "unknown"
	Time    = "unknown"
)
