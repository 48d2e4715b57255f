package cmd

import (
	"github.com/bitranox/lib-list/pkg/exitcfg"
)

// Snapshot of the process-wide traceback configuration, taken before a
// command runs so it can be restored afterwards.
type tracebackState struct {
	tracebackEnabled bool
	forceColor       bool
}

func snapshotTracebackState() tracebackState {
	return tracebackState{
		tracebackEnabled: exitcfg.Cnf.Traceback,
		forceColor:       exitcfg.Cnf.TracebackForceColor,
	}
}

// Enabling tracebacks also forces colored output, disabling clears both.
func applyTracebackPreferences(enabled bool) {
	exitcfg.Cnf.Traceback = enabled
	exitcfg.Cnf.TracebackForceColor = enabled
}

func restoreTracebackState(previous tracebackState) {
	exitcfg.Cnf.Traceback = previous.tracebackEnabled
	exitcfg.Cnf.TracebackForceColor = previous.forceColor
}
