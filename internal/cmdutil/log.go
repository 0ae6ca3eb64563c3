// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"log"
)

// Loggers carries the per-run INFO and WARN loggers.
type Loggers struct {
	Info *log.Logger
	Warn *log.Logger
}

// NewLoggers writes both levels to dst. quiet discards INFO; warnings are
// always shown.
func NewLoggers(dst io.Writer, quiet bool) Loggers {
	info := dst
	if quiet {
		info = io.Discard
	}
	return Loggers{
		Info: log.New(info, "INFO: ", log.LstdFlags),
		Warn: log.New(dst, "WARN: ", log.LstdFlags),
	}
}
