package otu

import (
	"errors"
	"fmt"

	"agc/internal/align"
	"agc/internal/derep"
)

// DefaultThreshold is the identity percentage at or above which a candidate
// is absorbed by an existing OTU.
const DefaultThreshold = 97.0

// OTU is a cluster representative and the dereplicated count of the read
// that founded it. Absorbed variants do not add to Count.
type OTU struct {
	Seq   string
	Count int
}

var ErrNoAligner = errors.New("otu: no aligner configured")

// Clusterer performs abundance-greedy clustering.
type Clusterer struct {
	Aligner align.Aligner

	// Threshold is an identity percentage; zero means DefaultThreshold.
	Threshold float64

	// Progress, if set, is called after each record with the number of
	// records processed and OTUs accepted so far.
	Progress func(done, otus int)
}

// Cluster walks records in order. A record becomes a new OTU unless it aligns
// to an existing representative at Threshold identity or better, in which
// case it is dropped. Representatives are tried in acceptance order and the
// first match wins. Any alignment error aborts the run.
func (c *Clusterer) Cluster(records []derep.Record) ([]OTU, error) {
	if c.Aligner == nil {
		return nil, ErrNoAligner
	}
	th := c.Threshold
	if th <= 0 {
		th = DefaultThreshold
	}
	otus := make([]OTU, 0, len(records))
	for i, r := range records {
		matched, err := c.matches(r.Seq, otus, th)
		if err != nil {
			return nil, fmt.Errorf("otu: candidate %d (count %d): %w", i+1, r.Count, err)
		}
		if !matched {
			otus = append(otus, OTU{Seq: r.Seq, Count: r.Count})
		}
		if c.Progress != nil {
			c.Progress(i+1, len(otus))
		}
	}
	return otus, nil
}

func (c *Clusterer) matches(seq string, otus []OTU, threshold float64) (bool, error) {
	for _, o := range otus {
		p, err := c.Aligner.Align(seq, o.Seq)
		if err != nil {
			return false, err
		}
		if Identity(p) >= threshold {
			return true, nil
		}
	}
	return false, nil
}
