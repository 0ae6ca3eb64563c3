// Package report summarises a clustering run.
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"agc/internal/derep"
	"agc/internal/otu"
)

type Summary struct {
	Reads    int // reads that passed the length filter
	Unique   int // distinct sequences among them
	Abundant int // distinct sequences at or above the minimum count
	OTUs     int
	OTUReads int // sum of founding counts over all OTUs

	MeanLen   float64
	MedianLen float64
}

func Summarize(reads, unique int, records []derep.Record, otus []otu.OTU) Summary {
	s := Summary{Reads: reads, Unique: unique, Abundant: len(records), OTUs: len(otus)}
	if len(otus) == 0 {
		return s
	}
	lens := make([]float64, len(otus))
	for i, o := range otus {
		lens[i] = float64(len(o.Seq))
		s.OTUReads += o.Count
	}
	sort.Float64s(lens)
	s.MeanLen = stat.Mean(lens, nil)
	n := len(lens)
	s.MedianLen = (lens[(n-1)/2] + lens[n/2]) / 2
	return s
}
