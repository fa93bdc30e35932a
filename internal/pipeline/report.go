package pipeline

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/auction-stats/internal/model"
)

// PairResult is the outcome of one attempted pair.
type PairResult struct {
	Pair     model.Pair
	Listings int
	Items    int
	Points   int
	Duration time.Duration
	Err      error
}

// Report summarizes a run. Pairs that were never attempted are absent.
type Report struct {
	RunID   uuid.UUID
	Started time.Time
	Results []PairResult
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []PairResult {
	var failed []PairResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins the errors of every failed pair, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("pair %s: %w", res.Pair, res.Err))
	}
	return errors.Join(errs...)
}

// Points returns the number of points written across all pairs.
func (r *Report) Points() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n += res.Points
		}
	}
	return n
}

// WriteSummary writes one line per attempted pair.
func (r *Report) WriteSummary(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "PAIR\tSTATUS\tLISTINGS\tITEMS\tPOINTS\tDURATION\n")
	for _, res := range r.Results {
		status := "ok"
		if res.Err != nil {
			status = "failed: " + res.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			res.Pair, status, res.Listings, res.Items, res.Points, res.Duration.Round(time.Millisecond))
	}
	return tw.Flush()
}
