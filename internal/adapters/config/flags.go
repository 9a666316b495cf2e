// Package config turns command-line flags, HEATSWEEP_* environment variables,
// and an optional option file into one domain.Options value.
package config

import (
	"strings"

	"github.com/spf13/pflag"
)

// Option names. Flags match them case-insensitively.
const (
	OptGeometry    = "geometry"
	OptTransFile   = "transfile"
	OptOmega       = "omega"
	OptOmegaFile   = "omegafile"
	OptOmegaMin    = "omegamin"
	OptOmegaMax    = "omegamax"
	OptOutputFile  = "outputfile"
	OptByOmegaFile = "byomegafile"
	OptPlotFlux    = "plotflux"
	OptLogFile     = "logfile"
	OptCache       = "cache"
	OptReadCache   = "readcache"
	OptWriteCache  = "writecache"
	OptNThread     = "nthread"
	OptOptions     = "options"
	OptKeepGoing   = "keepgoing"
)

// RegisterFlags declares every run option on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(normalize)

	fs.String(OptGeometry, "", "geometry file (required)")
	fs.String(OptTransFile, "", "list of geometrical transformations")
	fs.StringSlice(OptOmega, nil, "angular frequency, may be repeated")
	fs.String(OptOmegaFile, "", "file listing angular frequencies")
	fs.String(OptOmegaMin, "", "lower limit of the frequency integral")
	fs.String(OptOmegaMax, "", "upper limit of the frequency integral")
	fs.String(OptOutputFile, "", "frequency-integrated output file")
	fs.String(OptByOmegaFile, "", "frequency-resolved output file")
	fs.Bool(OptPlotFlux, false, "write spatially-resolved flux data")
	fs.String(OptLogFile, "", "log file (default heatsweep.log)")
	fs.String(OptCache, "", "kernel cache, read before and written after the sweep")
	fs.StringSlice(OptReadCache, nil, "read-only kernel cache, may be repeated")
	fs.String(OptWriteCache, "", "write-only kernel cache")
	fs.Int(OptNThread, 0, "number of evaluator threads (0 uses all CPUs)")
	fs.String(OptOptions, "", "file of option values (yaml, toml, json)")
	fs.Bool(OptKeepGoing, false, "mark failed entries as unavailable and continue")
}

// normalize makes flag names case-insensitive.
func normalize(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ToLower(name))
}
