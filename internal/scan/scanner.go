// Package scan walks a directory tree and measures the bits per pixel of every
// image it finds.
//
// Files are recognized by extension (png, jpg, jpeg, bmp, gif, in any case).
// A file that cannot be measured is skipped without an error: a scan over a
// messy tree reports what it can. The only fatal condition is a root that is
// missing or is not a directory.
package scan

import (
	"os"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"

	"github.com/gomantics/bppscan/internal/metric"
)

// Result is one measured image.
type Result struct {
	// Seq is the zero-based position of the result in discovery order.
	Seq int
	// BPP is the file size in bits divided by the pixel area.
	BPP float64
	// Path is the canonical absolute path, or the walked path if it could
	// not be resolved.
	Path string
}

// Options selects what a scan visits and reports.
type Options struct {
	// Recursive descends into subdirectories. Otherwise only direct
	// children of the root are visited.
	Recursive bool
	// Threshold, when set, drops results whose BPP is not strictly greater.
	Threshold *float64
}

// Scanner walks one filesystem.
type Scanner struct {
	fs      billy.Filesystem
	opts    Options
	calc    *metric.Calculator
	resolve Resolver
	log     *zap.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger for skipped entries.
func WithLogger(log *zap.Logger) Option {
	return func(s *Scanner) {
		s.log = log
	}
}

// WithResolver replaces Canonical as the path resolver.
func WithResolver(r Resolver) Option {
	return func(s *Scanner) {
		s.resolve = r
	}
}

// WithCalculator replaces the metric calculator.
func WithCalculator(c *metric.Calculator) Option {
	return func(s *Scanner) {
		s.calc = c
	}
}

// New creates a Scanner over fsys.
func New(fsys billy.Filesystem, opts Options, optFns ...Option) *Scanner {
	s := &Scanner{
		fs:      fsys,
		opts:    opts,
		resolve: Canonical,
		log:     zap.NewNop(),
	}
	for _, fn := range optFns {
		fn(s)
	}
	if s.calc == nil {
		s.calc = metric.New(fsys, metric.WithLogger(s.log))
	}
	return s
}

// Scan walks root and calls emit for each reported image as soon as it has
// been measured, in traversal order. It returns a *PathInvalidError if root
// is missing or not a directory, and otherwise only the first error returned
// by emit.
func (s *Scanner) Scan(root string, emit func(Result) error) error {
	if root == "" {
		return &PathInvalidError{Path: root, Reason: PathMissing}
	}
	info, err := s.fs.Stat(root)
	if err != nil {
		return &PathInvalidError{Path: root, Reason: PathMissing}
	}
	if !info.IsDir() {
		return &PathInvalidError{Path: root, Reason: PathNotDir}
	}

	maxDepth := 1
	if s.opts.Recursive {
		maxDepth = unlimited
	}

	seq := 0
	return walk(s.fs, root, maxDepth, s.log, func(path string, info os.FileInfo) error {
		if !s.isFile(path, info) || !Supported(info.Name()) {
			return nil
		}

		bpp, ok, err := s.calc.BPP(path)
		if err != nil {
			s.log.Debug("skipping file", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !ok {
			return nil
		}

		if t := s.opts.Threshold; t != nil && bpp <= *t {
			return nil
		}

		result := Result{Seq: seq, BPP: bpp, Path: s.canonical(path)}
		seq++
		return emit(result)
	})
}

// isFile reports whether path is a regular file, following a symlink once.
func (s *Scanner) isFile(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink == 0 {
		return info.Mode().IsRegular()
	}

	target, err := s.fs.Stat(path)
	if err != nil {
		s.log.Debug("skipping broken symlink", zap.String("path", path), zap.Error(err))
		return false
	}
	return target.Mode().IsRegular()
}

func (s *Scanner) canonical(path string) string {
	resolved, err := s.resolve(path)
	if err != nil {
		s.log.Debug("cannot canonicalize path", zap.String("path", path), zap.Error(err))
		return path
	}
	return resolved
}
