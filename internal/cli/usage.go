// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"agc/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet with the grouped agc help text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – abundance-greedy OTU clustering\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [flags] -i reads.fasta.gz\n  %s [flags] reads.fasta.gz\n", name, name)

		fmt.Fprintln(out, "\nInput/Output:")
		fmt.Fprintln(out, "  -i, --amplicon-file file     Amplicon FASTA (.gz/.bz2/.xz/.zst) or '-' for STDIN [*]")
		fmt.Fprintf(out, "  -o, --output-file file       OTU FASTA output, '-' for STDOUT [%s]\n", def("output-file"))
		fmt.Fprintf(out, "      --width int              Output sequence line width [%s]\n", def("width"))

		fmt.Fprintln(out, "\nDereplication:")
		fmt.Fprintf(out, "  -s, --min-seq-len int        Minimum sequence length [%s]\n", def("min-seq-len"))
		fmt.Fprintf(out, "  -m, --min-count int          Minimum occurrence count [%s]\n", def("min-count"))

		fmt.Fprintln(out, "\nClustering:")
		fmt.Fprintf(out, "      --identity float         Identity percent to join an existing OTU [%s]\n", def("identity"))

		fmt.Fprintln(out, "\nChimera removal (reserved, not applied):")
		fmt.Fprintf(out, "  -c, --chunk-size int         Chunk size [%s]\n", def("chunk-size"))
		fmt.Fprintf(out, "  -k, --kmer-size int          K-mer size [%s]\n", def("kmer-size"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file            Config file; AGC_* environment variables also apply")
		fmt.Fprintln(out, "      --progress               Show a clustering progress bar on STDERR")
		fmt.Fprintln(out, "      --summary                Print a run summary to STDOUT")
		fmt.Fprintln(out, "  -q, --quiet                  Suppress informational logging")
		fmt.Fprintln(out, "  -v, --version                Print version and exit")
		fmt.Fprintln(out, "  -h, --help                   Show this help and exit")
	}
	return fs
}
