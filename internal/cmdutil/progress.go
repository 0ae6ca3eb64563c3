package cmdutil

import (
	"fmt"
	"io"

	"gopkg.in/cheggaaa/pb.v1"
)

// Progress reports clustering progress. A nil *Progress is a no-op.
type Progress struct {
	bar *pb.ProgressBar
}

// NewProgress returns nil unless enabled.
func NewProgress(dst io.Writer, total int, enabled bool) *Progress {
	if !enabled || total <= 0 {
		return nil
	}
	bar := pb.New(total)
	bar.Output = dst
	bar.ShowSpeed = true
	bar.Start()
	return &Progress{bar: bar}
}

// Update matches otu.Clusterer.Progress.
func (p *Progress) Update(done, otus int) {
	if p == nil {
		return
	}
	p.bar.Prefix(fmt.Sprintf("%d OTUs ", otus))
	p.bar.Set(done)
}

func (p *Progress) Finish() {
	if p == nil {
		return
	}
	p.bar.Finish()
}
