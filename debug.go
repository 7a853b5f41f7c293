package canvasflow

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives debug and warning lines. Tests may swap it.
var debugOutput io.Writer = os.Stderr

// globalDebug mirrors the most recently set debug flag so that engine code,
// which has no Scene pointer, can check it cheaply. Only valid with a single
// Scene; multiple Scenes with differing debug modes reflect whichever called
// SetDebugMode last.
var globalDebug bool

// SetDebugMode enables or disables debug logging of settle transitions, tap
// dispatch and scene events to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugf prints a debug line when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	logf(format, args...)
}

// logf prints a line unconditionally. Used for errors that have no caller
// to return to, such as snapshot writes at the end of a frame.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOutput, "[canvasflow] "+format+"\n", args...)
}
