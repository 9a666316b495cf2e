package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Load resolves the options of one run. Precedence, highest first: explicitly
// set flags, HEATSWEEP_* environment variables, the option file named by
// --options, flag defaults. A range bound counts as specified when any of the
// first three layers sets it.
func Load(fs *pflag.FlagSet) (domain.Options, error) {
	v := viper.New()
	v.SetEnvPrefix(domain.EnvPrefix)
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return domain.Options{}, fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err)
	}

	if path := v.GetString(OptOptions); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return domain.Options{}, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (domain.Options, error) {
	opts := domain.Options{
		Geometry:    v.GetString(OptGeometry),
		TransFile:   v.GetString(OptTransFile),
		OmegaFile:   v.GetString(OptOmegaFile),
		OutputFile:  v.GetString(OptOutputFile),
		ByOmegaFile: v.GetString(OptByOmegaFile),
		PlotFlux:    v.GetBool(OptPlotFlux),
		LogFile:     v.GetString(OptLogFile),
		Cache:       v.GetString(OptCache),
		ReadCaches:  nonEmpty(v.GetStringSlice(OptReadCache)),
		WriteCache:  v.GetString(OptWriteCache),
		Threads:     v.GetInt(OptNThread),
		KeepGoing:   v.GetBool(OptKeepGoing),
	}

	for _, s := range nonEmpty(v.GetStringSlice(OptOmega)) {
		omega, err := domain.ParseFrequency(s)
		if err != nil {
			return domain.Options{}, parseError(OptOmega, err)
		}
		opts.Omegas = append(opts.Omegas, omega)
	}

	var err error
	if opts.OmegaMin, opts.OmegaMinSet, err = bound(v, OptOmegaMin); err != nil {
		return domain.Options{}, err
	}
	if opts.OmegaMax, opts.OmegaMaxSet, err = bound(v, OptOmegaMax); err != nil {
		return domain.Options{}, err
	}

	return opts, nil
}

func bound(v *viper.Viper, key string) (domain.Frequency, bool, error) {
	if !v.IsSet(key) {
		return 0, false, nil
	}
	omega, err := domain.ParseFrequency(v.GetString(key))
	if err != nil {
		return 0, false, parseError(key, err)
	}
	return omega, true, nil
}

func parseError(option string, err error) error {
	return zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err), "option", option)
}

func nonEmpty(values []string) []string {
	var out []string
	for _, s := range values {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
