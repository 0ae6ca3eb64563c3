// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"agc/internal/align"
	"agc/internal/cli"
	"agc/internal/cmdutil"
	"agc/internal/otu"
	"agc/internal/output"
	"agc/internal/pipeline"
	"agc/internal/report"
	"agc/internal/version"
	"agc/internal/writers"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 2
	ExitRuntime = 3
)

// Run parses argv, clusters the amplicon file and writes the OTUs. It returns
// the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("agc")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushed(outw, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "agc version %s\n", version.Version)
		return flushed(outw, stderr, ExitOK)
	}

	code := run(opts, outw, stderr)
	return flushed(outw, stderr, code)
}

func run(opts cli.Options, outw *bufio.Writer, stderr io.Writer) int {
	logs := cmdutil.NewLoggers(stderr, opts.Quiet)

	res, err := pipeline.Dereplicate(pipeline.Config{
		AmpliconFile: opts.AmpliconFile,
		MinSeqLen:    opts.MinSeqLen,
		MinCount:     opts.MinCount,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}
	logs.Info.Printf("%s: %d reads of at least %d nt, %d distinct",
		opts.AmpliconFile, res.Reads, opts.MinSeqLen, res.Unique)
	if len(res.Records) == 0 {
		logs.Warn.Printf("no sequence occurs at least %d times; writing an empty OTU list", opts.MinCount)
	} else {
		logs.Info.Printf("%d sequences occur at least %d times", len(res.Records), opts.MinCount)
	}

	progress := cmdutil.NewProgress(stderr, len(res.Records), opts.Progress)
	res, err = pipeline.Cluster(res, &otu.Clusterer{
		Aligner: align.NewNW(align.Scoring{
			Match:    opts.Match,
			Mismatch: opts.Mismatch,
			Gap:      opts.Gap,
		}),
		Threshold: opts.Identity,
		Progress:  progress.Update,
	})
	progress.Finish()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}

	if opts.OutputFile == "-" {
		err = output.WriteOTUs(outw, res.OTUs, opts.Width)
	} else {
		err = output.WriteFile(opts.OutputFile, res.OTUs, opts.Width)
	}
	if err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}

	sum := report.Summarize(res.Reads, res.Unique, res.Records, res.OTUs)
	logs.Info.Printf("%d OTUs at %g%% identity written to %s", sum.OTUs, opts.Identity, opts.OutputFile)
	if opts.Summary {
		if err := output.WriteSummary(outw, sum, true); err != nil && !writers.IsBrokenPipe(err) {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return ExitRuntime
		}
	}
	return ExitOK
}

func flushed(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := writers.Flush(outw); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitRuntime
	}
	return code
}
