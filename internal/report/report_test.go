package report

import (
	"testing"

	"agc/internal/derep"
	"agc/internal/otu"
)

func TestSummarize(t *testing.T) {
	recs := []derep.Record{{Seq: "ACGTAC", Count: 5}, {Seq: "ACGT", Count: 4}, {Seq: "ACGTACGT", Count: 3}}
	otus := []otu.OTU{{Seq: "ACGTACGT", Count: 3}, {Seq: "ACGT", Count: 4}, {Seq: "ACGTAC", Count: 5}}
	s := Summarize(20, 9, recs, otus)
	if s.Reads != 20 || s.Unique != 9 || s.Abundant != 3 || s.OTUs != 3 || s.OTUReads != 12 {
		t.Fatalf("bad counts: %+v", s)
	}
	if s.MeanLen != 6 || s.MedianLen != 6 {
		t.Fatalf("mean=%v median=%v, want 6 and 6", s.MeanLen, s.MedianLen)
	}
}

func TestSummarizeEvenMedian(t *testing.T) {
	cases := []struct {
		name       string
		otus       []otu.OTU
		mean, want float64
	}{
		{"two", []otu.OTU{{Seq: "AA", Count: 1}, {Seq: "AAAA", Count: 1}}, 3, 3},
		{"four", []otu.OTU{{Seq: "AAAAAAAA", Count: 2}, {Seq: "AA", Count: 2}, {Seq: "AAAAA", Count: 2}, {Seq: "AAA", Count: 2}}, 4.5, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Summarize(0, 0, nil, c.otus)
			if s.MedianLen != c.want || s.MeanLen != c.mean {
				t.Fatalf("median=%v mean=%v, want %v and %v", s.MedianLen, s.MeanLen, c.want, c.mean)
			}
		})
	}
}

func TestSummarizeNoOTUs(t *testing.T) {
	s := Summarize(4, 4, nil, nil)
	if s.OTUs != 0 || s.MeanLen != 0 || s.MedianLen != 0 {
		t.Fatalf("got %+v", s)
	}
}
