// internal/fasta/reader.go
package fasta

import (
	"bytes"
	"fmt"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one FASTA entry with its lines joined and upper-cased.
type Record struct {
	ID  string
	Seq string
}

// StreamPath reads every record in path and calls emit for each one whose
// sequence is at least minLen long. Empty records are skipped. A non-nil
// error from emit stops the scan and is returned.
func StreamPath(path string, minLen int, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := seqio.NewScanner(fasta.NewReader(rc, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		if len(s.Seq) == 0 || len(s.Seq) < minLen {
			continue
		}
		seq := bytes.ToUpper(alphabet.LettersToBytes(s.Seq))
		if err := emit(Record{ID: s.ID, Seq: string(seq)}); err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("fasta %s: %w", path, err)
	}
	return nil
}

// ReadSequences returns the sequences in path that are at least minLen long,
// in file order.
func ReadSequences(path string, minLen int) ([]string, error) {
	var out []string
	err := StreamPath(path, minLen, func(r Record) error {
		out = append(out, r.Seq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
