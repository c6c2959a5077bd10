package dateutil

import "fmt"

// MaxClipSeconds is the longest clip length rendered as minutes and seconds.
// Longer clips are shown as ClampedClipDuration.
const MaxClipSeconds = 3600

// ClampedClipDuration is shown for clips of an hour or more.
const ClampedClipDuration = "60:00"

// FormatMillis renders a millisecond count as "mm:ss".
// Milliseconds are truncated to whole seconds, negative input counts as zero
// and anything from one hour up renders as "60:00".
func FormatMillis(ms int64) string {
	return FormatMillisMin(ms, 0)
}

// FormatMillisMin is FormatMillis with the displayed seconds floored at minSeconds.
func FormatMillisMin(ms, minSeconds int64) string {
	secs := max(ms/1000, minSeconds, 0)
	if secs >= MaxClipSeconds {
		return ClampedClipDuration
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
