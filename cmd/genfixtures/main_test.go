package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomantics/bppscan/internal/probe"
	"github.com/gomantics/bppscan/internal/scan"
)

func TestRun_WritesEveryFormat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-o", dir, "--size", "40", "--blur", "1.5"}, &stderr))
	assert.Contains(t, stderr.String(), "Generated test images")

	want := map[string]probe.Format{
		"test.png":           probe.FormatPNG,
		"test.jpg":           probe.FormatJPEG,
		"test.bmp":           probe.FormatBMP,
		"test.gif":           probe.FormatGIF,
		"subdir/subtest.png": probe.FormatPNG,
		"gradient.png":       probe.FormatPNG,
	}

	fsys := osfs.New("")
	for name, format := range want {
		info, err := probe.ProbeFile(fsys, filepath.Join(dir, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		assert.Equal(t, probe.Info{Format: format, Width: 40, Height: 40}, info, name)
	}
}

func TestRun_FixturesAreScannable(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, 0, run([]string{"-o", dir}, &bytes.Buffer{}))

	count := func(recursive bool) int {
		n := 0
		err := scan.New(osfs.New(""), scan.Options{Recursive: recursive}).Scan(dir, func(r scan.Result) error {
			assert.Greater(t, r.BPP, 0.0)
			n++
			return nil
		})
		require.NoError(t, err)
		return n
	}

	assert.Equal(t, 4, count(false))
	assert.Equal(t, 5, count(true))
}

func TestRun_BadArguments(t *testing.T) {
	assert.Equal(t, 2, run([]string{"--size", "big"}, &bytes.Buffer{}))
	assert.Equal(t, 1, run([]string{"-o", t.TempDir(), "--size", "0"}, &bytes.Buffer{}))
}

func TestBlurredKeepsBounds(t *testing.T) {
	img := blurred(gradient(24), 2)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())
}
