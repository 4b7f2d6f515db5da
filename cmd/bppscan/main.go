// Command bppscan prints the bits per pixel of every image in a directory:
//
//	bppscan [-r] [-s] [-t threshold] [-v] [target_dir]
//
// Each line of output is "<bpp>\t<absolute path>".
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"

	"github.com/gomantics/bppscan/internal/config"
	"github.com/gomantics/bppscan/internal/report"
	"github.com/gomantics/bppscan/internal/scan"
	"github.com/gomantics/bppscan/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	const name = "bppscan"

	fs := config.NewFlagSet(name)
	cfg, err := config.Load(fs, args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		config.Usage(stderr, name, fs)
		return exitUsage
	}
	if cfg.Help {
		config.Usage(stdout, name, fs)
		return exitOK
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "%s %s\n", name, version)
		return exitOK
	}

	log := logger.New(cfg.Verbose, stderr)
	defer log.Sync() //nolint:errcheck // stderr sync fails on terminals

	if err := scanDir(cfg, log, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func scanDir(cfg *config.Config, log *zap.Logger, stdout io.Writer) error {
	if cfg.TargetDir == "" {
		return &scan.PathInvalidError{Path: cfg.TargetDir, Reason: scan.PathMissing}
	}
	root, err := filepath.Abs(cfg.TargetDir)
	if err != nil {
		return &scan.PathInvalidError{Path: cfg.TargetDir, Reason: scan.PathMissing}
	}

	log.Debug("scanning",
		zap.String("root", root),
		zap.Bool("recursive", cfg.Recursive),
		zap.Bool("sort", cfg.Sort),
		zap.Any("threshold", cfg.Threshold))

	scanner := scan.New(osfs.New(""), scan.Options{
		Recursive: cfg.Recursive,
		Threshold: cfg.Threshold,
	}, scan.WithLogger(log))

	sink := report.New(stdout, cfg.Sort)
	if err := scanner.Scan(root, sink.Add); err != nil {
		var pathErr *scan.PathInvalidError
		if errors.As(err, &pathErr) {
			// name the directory the way the user typed it
			pathErr.Path = cfg.TargetDir
		}
		return err
	}
	return sink.Flush()
}
