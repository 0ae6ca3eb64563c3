// Package config resolves run settings from defaults, an optional config
// file, AGC_* environment variables and explicitly set flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Setting keys, shared by config files, environment variables and flags.
const (
	KeyAmpliconFile = "amplicon-file"
	KeyMinSeqLen    = "min-seq-len"
	KeyMinCount     = "min-count"
	KeyChunkSize    = "chunk-size"
	KeyKmerSize     = "kmer-size"
	KeyOutputFile   = "output-file"
	KeyIdentity     = "identity"
	KeyWidth        = "width"
	KeyMatch        = "match"
	KeyMismatch     = "mismatch"
	KeyGap          = "gap"
)

// EnvPrefix prefixes environment overrides, e.g. AGC_MIN_COUNT.
const EnvPrefix = "AGC"

// Settings holds everything a clustering run needs.
type Settings struct {
	AmpliconFile string
	MinSeqLen    int
	MinCount     int
	ChunkSize    int // reserved for chimera removal
	KmerSize     int // reserved for chimera removal
	OutputFile   string
	Identity     float64
	Width        int

	Match    int
	Mismatch int
	Gap      int
}

func Defaults() Settings {
	return Settings{
		MinSeqLen:  200,
		MinCount:   3,
		ChunkSize:  100,
		KmerSize:   8,
		OutputFile: "OTU.fasta",
		Identity:   97,
		Width:      80,
		Match:      1,
		Mismatch:   -1,
		Gap:        -1,
	}
}

// Load layers file (if non-empty), the environment and overrides on top of
// Defaults and validates the result.
func Load(file string, overrides map[string]any) (Settings, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyAmpliconFile, d.AmpliconFile)
	v.SetDefault(KeyMinSeqLen, d.MinSeqLen)
	v.SetDefault(KeyMinCount, d.MinCount)
	v.SetDefault(KeyChunkSize, d.ChunkSize)
	v.SetDefault(KeyKmerSize, d.KmerSize)
	v.SetDefault(KeyOutputFile, d.OutputFile)
	v.SetDefault(KeyIdentity, d.Identity)
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyMatch, d.Match)
	v.SetDefault(KeyMismatch, d.Mismatch)
	v.SetDefault(KeyGap, d.Gap)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config %s: %w", file, err)
		}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for k, val := range overrides {
		v.Set(k, val)
	}

	s := Settings{
		AmpliconFile: v.GetString(KeyAmpliconFile),
		MinSeqLen:    v.GetInt(KeyMinSeqLen),
		MinCount:     v.GetInt(KeyMinCount),
		ChunkSize:    v.GetInt(KeyChunkSize),
		KmerSize:     v.GetInt(KeyKmerSize),
		OutputFile:   v.GetString(KeyOutputFile),
		Identity:     v.GetFloat64(KeyIdentity),
		Width:        v.GetInt(KeyWidth),
		Match:        v.GetInt(KeyMatch),
		Mismatch:     v.GetInt(KeyMismatch),
		Gap:          v.GetInt(KeyGap),
	}
	return s, s.Validate()
}

// Validate checks value ranges. It does not touch the filesystem.
func (s Settings) Validate() error {
	switch {
	case s.AmpliconFile == "":
		return errors.New("--amplicon-file is required")
	case s.MinSeqLen < 0:
		return errors.New("--min-seq-len must be ≥ 0")
	case s.MinCount < 1:
		return errors.New("--min-count must be ≥ 1")
	case s.ChunkSize < 1:
		return errors.New("--chunk-size must be ≥ 1")
	case s.KmerSize < 1:
		return errors.New("--kmer-size must be ≥ 1")
	case s.OutputFile == "":
		return errors.New("--output-file must not be empty")
	case s.Identity <= 0 || s.Identity > 100:
		return fmt.Errorf("--identity must be in (0, 100], got %g", s.Identity)
	case s.Width < 1:
		return errors.New("--width must be ≥ 1")
	case s.Match <= s.Mismatch:
		return fmt.Errorf("match score (%d) must exceed mismatch score (%d)", s.Match, s.Mismatch)
	}
	return nil
}
