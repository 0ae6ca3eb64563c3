// internal/derep/derep.go
package derep

import "sort"

// Record is one distinct sequence and the number of reads that collapsed to it.
type Record struct {
	Seq   string
	Count int
}

// Counter accumulates exact-match occurrence counts, remembering first-seen order.
type Counter struct {
	index map[string]int
	recs  []Record
	reads int
}

func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add counts one read.
func (c *Counter) Add(seq string) {
	c.reads++
	if i, ok := c.index[seq]; ok {
		c.recs[i].Count++
		return
	}
	c.index[seq] = len(c.recs)
	c.recs = append(c.recs, Record{Seq: seq, Count: 1})
}

// Reads returns the number of reads added so far.
func (c *Counter) Reads() int { return c.reads }

// Unique returns the number of distinct sequences seen so far.
func (c *Counter) Unique() int { return len(c.recs) }

// Records returns the sequences seen at least minCount times, most abundant
// first. Equal counts keep first-seen order.
func (c *Counter) Records(minCount int) []Record {
	out := make([]Record, 0, len(c.recs))
	for _, r := range c.recs {
		if r.Count >= minCount {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Dereplicate collapses identical sequences and returns them ordered by
// descending abundance, dropping those seen fewer than minCount times.
func Dereplicate(seqs []string, minCount int) []Record {
	c := NewCounter()
	for _, s := range seqs {
		c.Add(s)
	}
	return c.Records(minCount)
}
