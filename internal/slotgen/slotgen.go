// Package slotgen computes the fixed catalog of consultation windows used
// by the quick-generate operation.  Sessions run in two daily blocks,
// 10:00-13:00 and 15:00-18:00, cut into back-to-back windows of either 30
// or 60 minutes.  The package is pure: callers fetch existing slots and
// persist the difference.
package slotgen

import "fmt"

// Window is a start/end pair within a single day, formatted as TIME
// column values (HH:MM:SS).
type Window struct {
	Start string
	End   string
}

// blocks lists the bookable ranges as minutes from midnight.
var blocks = [][2]int{
	{10 * 60, 13 * 60},
	{15 * 60, 18 * 60},
}

// Windows enumerates the catalog for the given session length in
// minutes.  Only 30 and 60 minute sessions are offered; any other value
// returns nil.  Windows never straddle a block boundary.
func Windows(sessionMinutes int) []Window {
	if sessionMinutes != 30 && sessionMinutes != 60 {
		return nil
	}
	var out []Window
	for _, b := range blocks {
		for t := b[0]; t+sessionMinutes <= b[1]; t += sessionMinutes {
			out = append(out, Window{
				Start: clock(t),
				End:   clock(t + sessionMinutes),
			})
		}
	}
	return out
}

// Missing returns the catalog windows whose start time is not already
// taken on the target date.  Existing windows are keyed by start time
// only: a 30 minute slot at 10:00 blocks the 60 minute 10:00 window too,
// which is what the skip semantics call for.
func Missing(catalog []Window, existing map[string]struct{}) []Window {
	out := make([]Window, 0, len(catalog))
	for _, w := range catalog {
		if _, taken := existing[w.Start]; taken {
			continue
		}
		out = append(out, w)
	}
	return out
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}
