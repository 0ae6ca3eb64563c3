package otu

import "agc/internal/align"

// Identity returns the percentage of alignment columns holding the same
// symbol on both rows. Two gaps in one column count as a match.
func Identity(p align.Pair) float64 {
	n := len(p.A)
	if len(p.B) < n {
		n = len(p.B)
	}
	if n == 0 {
		return 0
	}
	same := 0
	for i := 0; i < n; i++ {
		if p.A[i] == p.B[i] {
			same++
		}
	}
	return float64(same) / float64(len(p.A)) * 100
}
