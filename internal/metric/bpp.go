// Package metric computes the bits-per-pixel density of an image file: its
// on-disk size in bits divided by its pixel area.
package metric

import (
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"

	"github.com/gomantics/bppscan/internal/probe"
)

// ErrMetadataUnavailable is returned when the size of a file cannot be read.
var ErrMetadataUnavailable = errors.New("metric: metadata unavailable")

// ProbeFunc reads the dimensions of the image stored at name.
type ProbeFunc func(fsys billy.Filesystem, name string) (probe.Info, error)

// Calculator measures files on one filesystem.
type Calculator struct {
	fs    billy.Filesystem
	probe ProbeFunc
	log   *zap.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger used to report files that have no value.
func WithLogger(log *zap.Logger) Option {
	return func(c *Calculator) {
		c.log = log
	}
}

// WithProbe replaces the header probe.
func WithProbe(fn ProbeFunc) Option {
	return func(c *Calculator) {
		c.probe = fn
	}
}

// New returns a Calculator that reads from fsys.
func New(fsys billy.Filesystem, opts ...Option) *Calculator {
	c := &Calculator{
		fs:    fsys,
		probe: probe.ProbeFile,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BPP returns the bits per pixel of the file at path. ok is false when the
// image has no meaningful density: its header cannot be read or it has zero
// width or height. err is non-nil only when the file size cannot be read, and
// then wraps ErrMetadataUnavailable.
func (c *Calculator) BPP(path string) (bpp float64, ok bool, err error) {
	info, err := c.fs.Stat(path)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s: %w", ErrMetadataUnavailable, path, err)
	}

	dims, err := c.probe(c.fs, path)
	if err != nil {
		if ce := c.log.Check(zap.DebugLevel, "unreadable image header"); ce != nil {
			ce.Write(
				zap.String("path", path),
				zap.String("detected", sniff(c.fs, path)),
				zap.Error(err),
			)
		}
		return 0, false, nil
	}

	if dims.Empty() {
		c.log.Debug("zero-area image",
			zap.String("path", path),
			zap.String("format", string(dims.Format)),
			zap.Int("width", dims.Width),
			zap.Int("height", dims.Height))
		return 0, false, nil
	}

	bpp, ok = Ratio(info.Size(), dims.Width, dims.Height)
	return bpp, ok, nil
}

// Ratio computes size*8 / (width*height) in float64. It reports false for a
// zero or negative dimension.
func Ratio(size int64, width, height int) (float64, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	return float64(size) * 8 / (float64(width) * float64(height)), true
}
