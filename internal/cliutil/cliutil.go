// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// boolFlags returns names of flags that don't take a value.
func boolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flags (with their values) from
// positionals so the input file may appear anywhere on the command line.
// "-" is a positional; everything after "--" is positional.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	bools := boolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if !bools[strings.TrimLeft(arg, "-")] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
		}
	}
	return flagArgs, posArgs
}

// ResolveInput turns positional arguments into at most one input path,
// expanding a glob if it matches exactly one file.
func ResolveInput(posArgs []string) (string, error) {
	switch len(posArgs) {
	case 0:
		return "", nil
	case 1:
	default:
		return "", fmt.Errorf("expected one amplicon file, got %d: %s", len(posArgs), strings.Join(posArgs, " "))
	}
	a := posArgs[0]
	if a == "-" || !strings.ContainsAny(a, "*?[") {
		return a, nil
	}
	m, err := filepath.Glob(a)
	if err != nil {
		return "", fmt.Errorf("bad glob %q: %v", a, err)
	}
	switch len(m) {
	case 0:
		return "", fmt.Errorf("no input matched %q", a)
	case 1:
		return m[0], nil
	default:
		return "", fmt.Errorf("%q matched %d files, expected one", a, len(m))
	}
}

// CheckInputFile reports whether path names an existing regular file.
// "-" (stdin) is always accepted.
func CheckInputFile(path string) error {
	if path == "-" {
		return nil
	}
	fi, err := os.Stat(path)
	switch {
	case err != nil && os.IsNotExist(err):
		return fmt.Errorf("%s does not exist", path)
	case err != nil:
		return err
	case fi.IsDir():
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
