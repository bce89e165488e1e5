package common

import "fmt"

// NAME of the application
const NAME = "launchery"

// These are set at build time via ldflags
var (
	version = "1.0.0-dev"
	commit  = "unknown"
	date    = "unknown"
)

// Version information for the running binary
type Version struct {
	Name    string
	Version string
	Commit  string
	Date    string
	Summary string
}

// AppVersion is the rendered version information
var AppVersion Version

func init() {
	AppVersion = Version{
		Name:    NAME,
		Version: version,
		Commit:  commit,
		Date:    date,
		Summary: fmt.Sprintf("%s-%s", version, commit),
	}
}
