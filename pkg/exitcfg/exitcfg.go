// Package exitcfg holds the process-wide error display configuration
// consulted by the CLI when a command fails.
package exitcfg

var Cnf Config

type Config struct {
	// Print the full stacktrace of a failing command instead of a
	// single-line error.
	Traceback bool `mapstructure:"traceback"`

	// Force colored traceback output even when stderr is not a terminal.
	TracebackForceColor bool `mapstructure:"traceback-force-color"`
}

// Reset restores the zero configuration.
func Reset() {
	Cnf = Config{}
}
