// internal/pipeline/pipeline.go
package pipeline

import (
	"agc/internal/derep"
	"agc/internal/fasta"
	"agc/internal/otu"
)

// Config controls reading and dereplication.
type Config struct {
	AmpliconFile string
	MinSeqLen    int // reads shorter than this are dropped
	MinCount     int // distinct sequences seen fewer times are dropped
}

// Result collects the output of every stage.
type Result struct {
	Reads   int // reads of at least MinSeqLen
	Unique  int // distinct sequences among them
	Records []derep.Record
	OTUs    []otu.OTU
}

// Dereplicate streams the amplicon file into an exact-match counter and
// returns the abundant sequences, most abundant first.
func Dereplicate(cfg Config) (Result, error) {
	c := derep.NewCounter()
	err := fasta.StreamPath(cfg.AmpliconFile, cfg.MinSeqLen, func(r fasta.Record) error {
		c.Add(r.Seq)
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Reads:   c.Reads(),
		Unique:  c.Unique(),
		Records: c.Records(cfg.MinCount),
	}, nil
}

// Cluster fills res.OTUs from res.Records.
func Cluster(res Result, cl *otu.Clusterer) (Result, error) {
	otus, err := cl.Cluster(res.Records)
	if err != nil {
		return res, err
	}
	res.OTUs = otus
	return res, nil
}

// Run performs Dereplicate followed by Cluster.
func Run(cfg Config, cl *otu.Clusterer) (Result, error) {
	res, err := Dereplicate(cfg)
	if err != nil {
		return res, err
	}
	return Cluster(res, cl)
}
