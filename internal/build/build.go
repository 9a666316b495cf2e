// Package build holds build-time information.
package build

// Build metadata. The defaults can be overwritten by linker flags:
//
//	-ldflags "-X go.trai.ch/heatsweep/internal/build.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
