package domain

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultLogFile is the log file used when none is configured.
	DefaultLogFile = "heatsweep.log"

	// ByOmegaExt is the extension of frequency-resolved output files.
	ByOmegaExt = ".byOmega"

	// OutputExt is the extension of frequency-integrated output files.
	OutputExt = ".out"

	// FluxExt is the extension of spatially-resolved flux files.
	FluxExt = ".flux"

	// DefaultTransformTag tags the identity transformation used when no
	// transformation file is given.
	DefaultTransformTag = "DEFAULT"

	// EnvPrefix prefixes environment variables that override options.
	EnvPrefix = "HEATSWEEP"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// FileBase strips the directory and the extension from path.
// "geo/Two.yaml" becomes "Two".
func FileBase(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
