// internal/fasta/open.go
package fasta

import (
	"errors"
	"io"
	"strings"

	"github.com/shenwei356/xopen"
)

// openReader opens path for reading, transparently decompressing gzip, bzip2,
// xz and zstd input. "-" reads stdin; an empty stdin yields an empty stream.
func openReader(path string) (io.ReadCloser, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		if errors.Is(err, xopen.ErrNoContent) {
			return io.NopCloser(strings.NewReader("")), nil
		}
		return nil, err
	}
	return r, nil
}
