// Package config turns command-line arguments and BPPSCAN_* environment
// variables into the settings of one scan. Flags win over the environment.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "BPPSCAN"

// ErrUsage wraps every error caused by malformed arguments.
var ErrUsage = errors.New("invalid usage")

// Config holds the settings of one scan.
type Config struct {
	TargetDir string
	Recursive bool
	// Threshold is nil when no threshold was given.
	Threshold *float64
	Sort      bool
	Verbose   bool

	Help    bool
	Version bool
}

// NewFlagSet declares the command-line flags of name.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolP("recursive", "r", false, "descend into subdirectories")
	fs.Float64P("threshold", "t", 0, "only show files with BPP strictly greater than this value")
	fs.BoolP("sort", "s", false, "sort by BPP, highest first, before printing")
	fs.BoolP("verbose", "v", false, "log skipped files to stderr")
	fs.BoolP("version", "V", false, "print version and exit")
	fs.BoolP("help", "h", false, "print help and exit")
	return fs
}

// Usage writes the help text for the flags in fs.
func Usage(w io.Writer, name string, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Calculates Bits Per Pixel (BPP) for images\n\n")
	fmt.Fprintf(w, "Usage: %s [flags] [target_dir]\n\n", name)
	fmt.Fprintf(w, "Arguments:\n  target_dir   directory to scan (default \".\")\n\n")
	fmt.Fprintf(w, "Flags:\n%s", fs.FlagUsages())
	fmt.Fprintf(w, "\nEvery flag can also be set as %s_<FLAG>, e.g. %s_THRESHOLD=2.5\n", envPrefix, envPrefix)
}

// Load parses args (without the program name) using fs from NewFlagSet.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	help, _ := fs.GetBool("help")
	version, _ := fs.GetBool("version")
	if help || version {
		return &Config{Help: help, Version: version}, nil
	}

	v := viper.New()
	v.SetDefault("target_dir", ".")
	v.SetDefault("recursive", false)
	v.SetDefault("sort", false)
	v.SetDefault("verbose", false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, name := range []string{"recursive", "threshold", "sort", "verbose"} {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	switch positional := fs.Args(); len(positional) {
	case 0:
	case 1:
		v.Set("target_dir", positional[0])
	default:
		return nil, fmt.Errorf("%w: expected at most one target directory, got %d", ErrUsage, len(positional))
	}

	cfg := &Config{
		TargetDir: v.GetString("target_dir"),
		Recursive: v.GetBool("recursive"),
		Sort:      v.GetBool("sort"),
		Verbose:   v.GetBool("verbose"),
	}

	if v.IsSet("threshold") {
		threshold, err := cast.ToFloat64E(v.Get("threshold"))
		if err != nil {
			return nil, fmt.Errorf("%w: threshold: %w", ErrUsage, err)
		}
		cfg.Threshold = &threshold
	}

	return cfg, nil
}
