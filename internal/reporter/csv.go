package reporter

import (
	"encoding/csv"
	"io"

	"github.com/reqlint/reqlint/internal/analyzer"
	"github.com/reqlint/reqlint/internal/verdict"
)

// CSVReporter exports the tabular projection of each verdict, one row
// per statement.
type CSVReporter struct {
	w io.Writer
}

// NewCSVReporter creates a CSV reporter writing to w.
func NewCSVReporter(w io.Writer) *CSVReporter {
	return &CSVReporter{w: w}
}

// Report writes a header row followed by one record per result.
func (r *CSVReporter) Report(results []analyzer.Result) error {
	cw := csv.NewWriter(r.w)

	if err := cw.Write(verdict.RecordHeader()); err != nil {
		return err
	}
	for _, res := range results {
		if err := cw.Write(res.Verdict.Record()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
