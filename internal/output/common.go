package output

// DefaultWidth is the line width used to wrap representative sequences.
const DefaultWidth = 80

// SummaryHeader is the header row of the run summary TSV.
const SummaryHeader = "reads\tunique\tabundant\totus\totu_reads\tmean_otu_len\tmedian_otu_len"
