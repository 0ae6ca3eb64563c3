package fasta

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const plain = `>seq1 first read
ACGTACGT
ACGT
>seq2
acgt
>empty
>seq3
ACGTACG
`

func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reads.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func writePlain(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reads.fa")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestStreamGzip(t *testing.T) {
	var recs []Record
	err := StreamPath(writeGz(t, plain), 0, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		t.Fatalf("stream gz: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("want 3 non-empty records, got %+v", recs)
	}
	if recs[0].ID != "seq1" || recs[0].Seq != "ACGTACGTACGT" {
		t.Errorf("multi-line record not joined: %+v", recs[0])
	}
	if recs[1].Seq != "ACGT" {
		t.Errorf("lower case not normalised: %+v", recs[1])
	}
}

func TestMinLengthBoundary(t *testing.T) {
	path := writePlain(t, plain)
	got, err := ReadSequences(path, 8)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 || got[0] != "ACGTACGTACGT" {
		t.Fatalf("minLen 8: got %v", got)
	}
	got, err = ReadSequences(path, 7)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 || got[1] != "ACGTACG" {
		t.Fatalf("minLen 7 should keep the 7-mer: got %v", got)
	}
}

func TestEmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := StreamPath(writePlain(t, plain), 0, func(Record) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("got err=%v after %d records", err, n)
	}
}

func TestSequenceBeforeHeaderIsError(t *testing.T) {
	_, err := ReadSequences(writePlain(t, "ACGT\n>r1\nACGT\n"), 0)
	if err == nil {
		t.Fatal("expected error for sequence data before the first header")
	}
}

func TestMissingFile(t *testing.T) {
	_, err := ReadSequences(filepath.Join(t.TempDir(), "nope.fa.gz"), 0)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStreamStdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() { _, _ = io.WriteString(w, plain); _ = w.Close() }()

	got, err := ReadSequences("-", 0)
	if err != nil {
		t.Fatalf("stream stdin: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records from stdin, got %d", len(got))
	}
}
