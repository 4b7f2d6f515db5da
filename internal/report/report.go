// Package report prints scan results, one "<bpp>\t<path>" line each.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/gomantics/bppscan/internal/scan"
)

// Line formats r with the density rounded to two decimal places.
func Line(r scan.Result) string {
	return fmt.Sprintf("%.2f\t%s", r.BPP, r.Path)
}

// Sink consumes results in discovery order.
type Sink interface {
	// Add accepts the next result.
	Add(r scan.Result) error
	// Flush writes anything still held back.
	Flush() error
}

// New returns a Sorted sink if sorted is set and a Stream sink otherwise.
func New(w io.Writer, sorted bool) Sink {
	if sorted {
		return NewSorted(w)
	}
	return NewStream(w)
}

// Stream writes each result as soon as it arrives.
type Stream struct {
	w io.Writer
}

// NewStream returns a Stream writing to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// Add implements Sink.
func (s *Stream) Add(r scan.Result) error {
	return writeLine(s.w, r)
}

// Flush implements Sink. A Stream holds nothing back.
func (s *Stream) Flush() error {
	return nil
}

// Sorted holds every result until Flush, then writes them by descending
// density. Equal densities keep their discovery order.
type Sorted struct {
	w       io.Writer
	results []scan.Result
}

// NewSorted returns a Sorted writing to w.
func NewSorted(w io.Writer) *Sorted {
	return &Sorted{w: w}
}

// Add implements Sink.
func (s *Sorted) Add(r scan.Result) error {
	s.results = append(s.results, r)
	return nil
}

// Flush implements Sink.
func (s *Sorted) Flush() error {
	slices.SortStableFunc(s.results, compare)
	for _, r := range s.results {
		if err := writeLine(s.w, r); err != nil {
			return err
		}
	}
	s.results = s.results[:0]
	return nil
}

// compare orders by density, highest first, then by discovery order.
func compare(a, b scan.Result) int {
	if c := cmp.Compare(b.BPP, a.BPP); c != 0 {
		return c
	}
	return cmp.Compare(a.Seq, b.Seq)
}

func writeLine(w io.Writer, r scan.Result) error {
	if _, err := fmt.Fprintln(w, Line(r)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
