package output

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/shenwei356/xopen"

	"agc/internal/otu"
)

// WriteOTUs writes one FASTA record per OTU, numbered from 1, with the
// founding count in the header and the sequence wrapped at width columns.
func WriteOTUs(w io.Writer, otus []otu.OTU, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	fw := fasta.NewWriter(w, width)
	for i, o := range otus {
		s := linear.NewSeq(fmt.Sprintf("OTU_%d", i+1), alphabet.BytesToLetters([]byte(o.Seq)), alphabet.DNAredundant)
		s.Desc = fmt.Sprintf("occurrence:%d", o.Count)
		if _, err := fw.Write(s); err != nil {
			return fmt.Errorf("write OTU_%d: %w", i+1, err)
		}
	}
	return nil
}

// WriteFile writes otus to path. A ".gz" suffix compresses the output and
// "-" writes to stdout.
func WriteFile(path string, otus []otu.OTU, width int) (err error) {
	fh, err := xopen.Wopen(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteOTUs(fh, otus, width)
}
