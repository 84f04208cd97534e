package logging

import (
	"fmt"
	"io"
	"os"
)

// output is where debug and warning messages are written
var output io.Writer = os.Stderr

// SetOutput redirects log output and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// verbose forces debug output on regardless of the environment
var verbose bool

// SetVerbose turns debug output on or off for the rest of the process
func SetVerbose(enabled bool) {
	verbose = enabled
}

// DebugEnabled returns true if debug mode is enabled via SetVerbose or the
// TD_DEBUG environment variable
func DebugEnabled() bool {
	return verbose || os.Getenv("TD_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(output, args...)
	}
}

// Warnf prints a warning regardless of debug mode.
// Used for conditions that are recovered from but should not pass silently.
func Warnf(format string, args ...interface{}) {
	fmt.Fprintf(output, "warning: "+format+"\n", args...)
}
