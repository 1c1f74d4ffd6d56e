package zoomage

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, initial-state
// capture, double taps, resets and animation completions are logged to
// stderr.
func (v *ZoomView) SetDebugMode(enabled bool) {
	v.debug = enabled
}

// debugf prints a formatted line to stderr when debug mode is on.
func (v *ZoomView) debugf(format string, args ...any) {
	if !v.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[zoomage] "+format+"\n", args...)
}

var eventNames = [...]string{"gesture-start", "gesture-end", "double-tap-zoom", "reset", "animation-end"}

func (t TransformEventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}
