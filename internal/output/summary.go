package output

import (
	"fmt"
	"io"

	"agc/internal/report"
)

// WriteSummary writes s as a tab-delimited row, optionally preceded by SummaryHeader.
func WriteSummary(w io.Writer, s report.Summary, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SummaryHeader); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.1f\t%.1f\n",
		s.Reads, s.Unique, s.Abundant, s.OTUs, s.OTUReads, s.MeanLen, s.MedianLen)
	return err
}
