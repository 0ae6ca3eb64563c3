// internal/cli/options.go
package cli

import (
	"errors"
	"flag"

	"agc/internal/cliutil"
	"agc/internal/config"
)

// Options holds the resolved settings plus flags that only affect the CLI.
type Options struct {
	config.Settings

	ConfigFile string
	Progress   bool
	Summary    bool
	Quiet      bool
	Version    bool
}

// settingFlags maps every flag name (long and short) that feeds a setting to
// its config key.
var settingFlags = map[string]string{
	"amplicon-file": config.KeyAmpliconFile, "i": config.KeyAmpliconFile,
	"min-seq-len": config.KeyMinSeqLen, "s": config.KeyMinSeqLen,
	"min-count": config.KeyMinCount, "m": config.KeyMinCount,
	"chunk-size": config.KeyChunkSize, "c": config.KeyChunkSize,
	"kmer-size": config.KeyKmerSize, "k": config.KeyKmerSize,
	"output-file": config.KeyOutputFile, "o": config.KeyOutputFile,
	"identity": config.KeyIdentity,
	"width":    config.KeyWidth,
}

// ParseArgs registers all flags on fs, parses argv and resolves the final
// settings. The amplicon file may also be given as a single positional.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	s := &opt.Settings
	d := config.Defaults()

	// Input / output
	fs.StringVar(&s.AmpliconFile, "amplicon-file", "", "amplicon FASTA file, optionally compressed, or '-' [*]")
	fs.StringVar(&s.AmpliconFile, "i", "", "alias of --amplicon-file")
	fs.StringVar(&s.OutputFile, "output-file", d.OutputFile, "OTU FASTA output ('-' = stdout, .gz compresses)")
	fs.StringVar(&s.OutputFile, "o", d.OutputFile, "alias of --output-file")
	fs.IntVar(&s.Width, "width", d.Width, "output sequence line width")

	// Dereplication
	fs.IntVar(&s.MinSeqLen, "min-seq-len", d.MinSeqLen, "minimum sequence length")
	fs.IntVar(&s.MinSeqLen, "s", d.MinSeqLen, "alias of --min-seq-len")
	fs.IntVar(&s.MinCount, "min-count", d.MinCount, "minimum occurrence count")
	fs.IntVar(&s.MinCount, "m", d.MinCount, "alias of --min-count")

	// Clustering
	fs.Float64Var(&s.Identity, "identity", d.Identity, "identity percent at which a sequence joins an OTU")

	// Chimera removal (reserved)
	fs.IntVar(&s.ChunkSize, "chunk-size", d.ChunkSize, "chunk size (reserved)")
	fs.IntVar(&s.ChunkSize, "c", d.ChunkSize, "alias of --chunk-size")
	fs.IntVar(&s.KmerSize, "kmer-size", d.KmerSize, "k-mer size (reserved)")
	fs.IntVar(&s.KmerSize, "k", d.KmerSize, "alias of --kmer-size")

	// Misc
	fs.StringVar(&opt.ConfigFile, "config", "", "config file (YAML, TOML or JSON)")
	fs.BoolVar(&opt.Progress, "progress", false, "show a clustering progress bar on stderr")
	fs.BoolVar(&opt.Summary, "summary", false, "print a run summary to stdout")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress informational logging")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show this help message")
	fs.BoolVar(&help, "h", false, "alias of --help")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	overrides := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := settingFlags[f.Name]; ok {
			overrides[key] = f.Value.(flag.Getter).Get()
		}
	})
	pos, err := cliutil.ResolveInput(posArgs)
	if err != nil {
		return opt, err
	}
	if pos != "" {
		if _, ok := overrides[config.KeyAmpliconFile]; ok {
			return opt, errors.New("amplicon file given both as --amplicon-file and positionally")
		}
		overrides[config.KeyAmpliconFile] = pos
	}

	settings, err := config.Load(opt.ConfigFile, overrides)
	if err != nil {
		return opt, err
	}
	if err := cliutil.CheckInputFile(settings.AmpliconFile); err != nil {
		return opt, err
	}
	opt.Settings = settings
	return opt, nil
}
