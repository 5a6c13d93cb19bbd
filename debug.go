package arbor

import (
	"fmt"
	"os"
	"time"
)

// globalDebug is set by SetDebugMode. Nodes have no pointer to their tree,
// so the bounds contract checks read this flag instead.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, a parent
// offering a child less than its minimum size panics, large child lists are
// reported, and per-frame timing and visit counts are logged to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// visits counts node visits during the current pass. Only maintained in
// debug mode.
var visits int

func countVisit() {
	if globalDebug {
		visits++
	}
}

// debugStats holds per-frame timing and visit counts.
type debugStats struct {
	dibsTime   time.Duration
	tickTime   time.Duration
	drawTime   time.Duration
	dibsVisits int
	tickVisits int
	drawVisits int
	mouseTaken bool
}

// debugLogUpdate prints the dibs and tick pass stats to stderr.
func debugLogUpdate(stats debugStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[arbor] dibs: %v (%d nodes) | tick: %v (%d nodes) | mouse claimed: %t\n",
		stats.dibsTime, stats.dibsVisits, stats.tickTime, stats.tickVisits, stats.mouseTaken)
}

// debugLogDraw prints the draw pass stats to stderr.
func debugLogDraw(stats debugStats) {
	_, _ = fmt.Fprintf(os.Stderr, "[arbor] draw: %v (%d nodes)\n",
		stats.drawTime, stats.drawVisits)
}

// debugCheckChildCount warns on stderr if a list holds more than 1000
// children.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *ChildList) {
	if len(c.items) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[arbor] warning: %d children (threshold %d)\n",
			len(c.items), debugMaxChildCount)
	}
}
