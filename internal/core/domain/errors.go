package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingRequiredOption is returned when a mandatory option (the geometry) is not set.
	ErrMissingRequiredOption = zerr.New("missing required option")

	// ErrConflictingOptions is returned when mutually exclusive options are set together.
	ErrConflictingOptions = zerr.New("conflicting options")

	// ErrConflictingFrequencyMode is returned when a discrete frequency list and a frequency
	// range are requested in the same run.
	ErrConflictingFrequencyMode = zerr.New("omegamin/omegamax may not be used with omega/omegafile")

	// ErrInvalidInputFile is returned when a frequency file is missing or malformed.
	ErrInvalidInputFile = zerr.New("invalid input file")

	// ErrInvalidRangeBound is returned when a range bound is complex, negative, or out of order.
	ErrInvalidRangeBound = zerr.New("invalid frequency range bound")

	// ErrInvalidFrequency is returned when a frequency literal cannot be parsed.
	ErrInvalidFrequency = zerr.New("invalid frequency value")

	// ErrCachePreloadFailure is returned when a cache source cannot be preloaded.
	// It is reported but never aborts a run.
	ErrCachePreloadFailure = zerr.New("failed to preload kernel cache")

	// ErrCacheWriteFailed is returned when the kernel cache cannot be written back.
	ErrCacheWriteFailed = zerr.New("failed to write kernel cache")

	// ErrEvaluationFailure is returned when the integrand cannot be evaluated for a
	// frequency and transformation.
	ErrEvaluationFailure = zerr.New("evaluation failed")

	// ErrSweepIncomplete is returned when a sweep finished with unavailable entries.
	ErrSweepIncomplete = zerr.New("sweep finished with unavailable entries")

	// ErrUnsupportedMode is returned when frequency integration over a range is requested.
	ErrUnsupportedMode = zerr.New("frequency integration is not yet implemented")

	// ErrDegenerateVector is returned when normalizing a zero-length vector.
	ErrDegenerateVector = zerr.New("cannot normalize zero-length vector")

	// ErrInvalidGeometry is returned when a geometry file cannot be read or is inconsistent.
	ErrInvalidGeometry = zerr.New("invalid geometry")

	// ErrInvalidTransformation is returned when a transformation file cannot be read or
	// references unknown objects.
	ErrInvalidTransformation = zerr.New("invalid transformation")

	// ErrOutputWriteFailed is returned when an output file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output")

	// ErrInvalidLocation is returned when a cache location cannot be parsed.
	ErrInvalidLocation = zerr.New("invalid cache location")

	// ErrLocationNotFound is returned when a cache location does not exist.
	ErrLocationNotFound = zerr.New("cache location not found")

	// ErrConfigReadFailed is returned when the option file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read option file")

	// ErrConfigParseFailed is returned when option values cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse options")

	// ErrLogFileOpenFailed is returned when the log file cannot be opened.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")
)
