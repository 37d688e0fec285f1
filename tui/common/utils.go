package common

import (
	"fmt"
	"time"
)

// TruncateID shortens a long post ID for display, keeping both ends.
func TruncateID(id string) string {
	if len(id) <= 24 {
		return id
	}
	return id[:10] + "..." + id[len(id)-10:]
}

// RelativeTime renders a timestamp as a coarse "2h ago" style string.
func RelativeTime(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
