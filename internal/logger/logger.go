/*
Package logger wires klog into the esdiag command line.

Verbosity levels:

0: run progress printed by the CLI (bundle resolved, report written).

1: per-artifact decisions inside the store and analyzers, such as a missing
artifact or a skipped log file.

2: everything else, including cache hits and per-file parse statistics.

Functions that return an error do not log it; the caller decides.
*/
package logger

import (
	"flag"
	"strconv"
	"sync"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

var lock sync.Mutex

// InitFlags registers klog's flags on a private flag set and exposes only
// "v" on flags.
func InitFlags(flags *pflag.FlagSet) {
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)

	klogFlags.VisitAll(func(f *flag.Flag) {
		if f.Name == "v" {
			flags.AddGoFlag(f)
		}
	})
}

// SetVerbosity sets klog's verbosity without going through a command line.
// Tests use it to see the store's diagnostics.
func SetVerbosity(level int) error {
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	return klogFlags.Set("v", strconv.Itoa(level))
}

// SetQuiet discards all klog output when quiet is true and restores the
// default logger otherwise.
func SetQuiet(quiet bool) {
	lock.Lock()
	defer lock.Unlock()

	if quiet {
		klog.SetLogger(logr.Discard())
	} else {
		klog.ClearLogger()
	}
}
