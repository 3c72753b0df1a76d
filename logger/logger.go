// Package logger is the codec's ambient logging surface. The codec
// itself is pure and logs nothing on success; it is used only to
// report why a payload decode rejected its input.
package logger

import (
	"log"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

func init() {
	stdr.SetVerbosity(verbosity())
	if !envBool(envLogEnable, true) {
		l = logr.Discard()
	}
}

var l = stdr.New(log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile))

// ReplaceLogger swaps the package-wide logger, letting a host
// application redirect codec diagnostics into its own logging setup.
func ReplaceLogger(logger logr.Logger) {
	l = logger
}

// GetLogger returns a named logger, e.g. logger.GetLogger("payload").
func GetLogger(name string) logr.Logger {
	return l.WithName(name)
}

// verbosity derives the stdr verbosity level from LOG_LEVEL (an
// integer) or DEBUG (a boolean shorthand for level 1), in that order.
func verbosity() int {
	if s := envString(envLogLevel, ""); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	if envBool(envDebug, false) {
		return 1
	}
	return 0
}
