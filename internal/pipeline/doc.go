// Package pipeline wires the run stages together: read and dereplicate the
// amplicon file, then cluster the abundant sequences into OTUs.
//
// Alignment is supplied by the caller through otu.Clusterer, which keeps the
// pipeline swappable and testable.
package pipeline
