// Command genfixtures writes sample images for trying out bppscan:
//
//	genfixtures [-o test_images] [--size 100] [--blur 0]
//
// It creates one solid-colour image per supported format plus one in a
// subdirectory, so recursive and non-recursive scans give different output.
package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/gomantics/bppscan/pkg/logger"
)

type fixture struct {
	name  string
	color color.NRGBA
}

var fixtures = []fixture{
	{"test.png", color.NRGBA{R: 255, A: 255}},                   // Red
	{"test.jpg", color.NRGBA{B: 255, A: 255}},                   // Blue
	{"test.bmp", color.NRGBA{G: 255, A: 255}},                   // Green
	{"test.gif", color.NRGBA{R: 255, G: 255, A: 255}},           // Yellow
	{"subdir/subtest.png", color.NRGBA{R: 128, B: 128, A: 255}}, // Purple
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := pflag.NewFlagSet("genfixtures", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.StringP("output", "o", "test_images", "directory to write images into")
	size := fs.Int("size", 100, "width and height of each image in pixels")
	blur := fs.Float32("blur", 0, "also write a blurred gradient image with this Gaussian sigma")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logger.NewSugared(true, stderr)
	defer log.Sync() //nolint:errcheck // stderr sync fails on terminals

	if err := generate(*out, *size, *blur, log); err != nil {
		log.Errorw("failed to generate fixtures", zap.Error(err))
		return 1
	}
	log.Infof("Generated test images in %s", *out)
	return 0
}

func generate(dir string, size int, blur float32, log *zap.SugaredLogger) error {
	if size <= 0 {
		return fmt.Errorf("size must be positive, got %d", size)
	}

	for _, f := range fixtures {
		path := filepath.Join(dir, filepath.FromSlash(f.name))
		if err := save(imaging.New(size, size, f.color), path); err != nil {
			return err
		}
		log.Infow("Created image", "path", path)
	}

	if blur > 0 {
		path := filepath.Join(dir, "gradient.png")
		if err := save(blurred(gradient(size), blur), path); err != nil {
			return err
		}
		log.Infow("Created image", "path", path, "sigma", blur)
	}
	return nil
}

// gradient fades from red at the left edge to blue at the right with a hard
// stripe every eighth column, which compresses worse than a solid fill.
func gradient(size int) *image.NRGBA {
	img := imaging.New(size, size, color.Black)
	for x := 0; x < size; x++ {
		c := color.NRGBA{R: uint8(255 * (size - x) / size), B: uint8(255 * x / size), A: 255}
		if x%8 == 0 {
			c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		for y := 0; y < size; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func blurred(src image.Image, sigma float32) *image.NRGBA {
	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

func save(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
