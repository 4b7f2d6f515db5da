package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomantics/bppscan/internal/scan"
)

func TestLine(t *testing.T) {
	tests := []struct {
		bpp  float64
		path string
		want string
	}{
		{8, "/img/a.png", "8.00\t/img/a.png"},
		{0.8, "/img/b.jpg", "0.80\t/img/b.jpg"},
		{1.23456, "/x y/c.gif", "1.23\t/x y/c.gif"},
		{0.004, "/d.bmp", "0.00\t/d.bmp"},
		{12345.678, "/e.png", "12345.68\t/e.png"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(scan.Result{BPP: tt.bpp, Path: tt.path}))
		})
	}
}

func results() []scan.Result {
	return []scan.Result{
		{Seq: 0, BPP: 1.5, Path: "/a"},
		{Seq: 1, BPP: 7.25, Path: "/b"},
		{Seq: 2, BPP: 1.5, Path: "/c"},
		{Seq: 3, BPP: 0.1, Path: "/d"},
		{Seq: 4, BPP: 7.25, Path: "/e"},
	}
}

func TestStream_WritesImmediately(t *testing.T) {
	var out bytes.Buffer
	sink := New(&out, false)

	for i, r := range results() {
		require.NoError(t, sink.Add(r))
		assert.Equal(t, i+1, strings.Count(out.String(), "\n"), "line %d written before the next result", i)
	}
	require.NoError(t, sink.Flush())

	assert.Equal(t, "1.50\t/a\n7.25\t/b\n1.50\t/c\n0.10\t/d\n7.25\t/e\n", out.String())
}

func TestSorted_DescendingStable(t *testing.T) {
	var out bytes.Buffer
	sink := New(&out, true)

	for _, r := range results() {
		require.NoError(t, sink.Add(r))
	}
	assert.Empty(t, out.String(), "nothing is written before Flush")

	require.NoError(t, sink.Flush())
	assert.Equal(t, "7.25\t/b\n7.25\t/e\n1.50\t/a\n1.50\t/c\n0.10\t/d\n", out.String())
}

func TestSorted_TieBreakUsesSeqNotArrival(t *testing.T) {
	var out bytes.Buffer
	sink := NewSorted(&out)

	require.NoError(t, sink.Add(scan.Result{Seq: 2, BPP: 3, Path: "/late"}))
	require.NoError(t, sink.Add(scan.Result{Seq: 0, BPP: 3, Path: "/early"}))
	require.NoError(t, sink.Add(scan.Result{Seq: 1, BPP: 4, Path: "/top"}))
	require.NoError(t, sink.Flush())

	assert.Equal(t, "4.00\t/top\n3.00\t/early\n3.00\t/late\n", out.String())
}

func TestSorted_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewSorted(&out).Flush())
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestSinks_WriteError(t *testing.T) {
	err := NewStream(failingWriter{}).Add(scan.Result{BPP: 1, Path: "/a"})
	assert.ErrorContains(t, err, "closed pipe")

	sorted := NewSorted(failingWriter{})
	require.NoError(t, sorted.Add(scan.Result{BPP: 1, Path: "/a"}))
	assert.ErrorContains(t, sorted.Flush(), "closed pipe")
}
