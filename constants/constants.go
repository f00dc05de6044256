package constants

// Set at build time with -ldflags "-X github.com/xeptore/filesize/constants.Version=...".
var (
	Version     = "dev"
	CompileTime = "unknown"
)

const AppName = "filesize"
