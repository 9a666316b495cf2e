package domain

import "slices"

// Options is the validated configuration surface of one run.
// It is built once at startup and passed by value; no component reads
// process-wide option state.
type Options struct {
	// Geometry is the geometry file. Mandatory.
	Geometry string
	// TransFile is the optional list of geometrical transformations.
	TransFile string

	// Omegas are the explicitly listed frequencies, in command-line order.
	Omegas []Frequency
	// OmegaFile is the optional file of frequencies.
	OmegaFile string

	OmegaMin    Frequency
	OmegaMinSet bool
	OmegaMax    Frequency
	OmegaMaxSet bool

	// OutputFile names the frequency-integrated output file.
	OutputFile string
	// ByOmegaFile names the frequency-resolved output file.
	ByOmegaFile string
	// PlotFlux requests spatially-resolved flux data.
	PlotFlux bool
	// LogFile names the log file.
	LogFile string

	// Cache is both preloaded and written back.
	Cache string
	// ReadCaches are preloaded in order before Cache.
	ReadCaches []string
	// WriteCache receives the cache after the sweep. Exclusive with Cache.
	WriteCache string

	// Threads is passed to the evaluator. Zero selects the number of CPUs.
	Threads int
	// KeepGoing marks failed evaluations as unavailable instead of aborting.
	KeepGoing bool
}

// PreloadSources returns the cache sources in preload order: every ReadCache
// in the order given, then Cache. Earlier sources win on key collisions.
func (o Options) PreloadSources() []string {
	sources := slices.Clone(o.ReadCaches)
	if o.Cache != "" {
		sources = append(sources, o.Cache)
	}
	return sources
}

// WriteBackTarget returns the location the cache is written to after the run,
// or "" when no write-back is configured.
func (o Options) WriteBackTarget() string {
	if o.Cache != "" {
		return o.Cache
	}
	return o.WriteCache
}

// ByOmegaPath returns the frequency-resolved output file, defaulting to
// <geometry base>.byOmega.
func (o Options) ByOmegaPath() string {
	if o.ByOmegaFile != "" {
		return o.ByOmegaFile
	}
	return FileBase(o.Geometry) + ByOmegaExt
}

// OutputPath returns the frequency-integrated output file, defaulting to
// <geometry base>.out.
func (o Options) OutputPath() string {
	if o.OutputFile != "" {
		return o.OutputFile
	}
	return FileBase(o.Geometry) + OutputExt
}

// FluxPath returns the spatially-resolved flux file.
func (o Options) FluxPath() string {
	return FileBase(o.Geometry) + FluxExt
}

// LogPath returns the log file, defaulting to DefaultLogFile.
func (o Options) LogPath() string {
	if o.LogFile != "" {
		return o.LogFile
	}
	return DefaultLogFile
}
