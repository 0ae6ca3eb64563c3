// Package otu turns abundance-ordered dereplicated reads into Operational
// Taxonomic Units by greedy, identity-thresholded clustering.
//
// The clusterer never imports fasta, output or app; alignment is injected
// through align.Aligner so tests can substitute a deterministic double.
package otu
