package render

import (
	"time"

	"github.com/dustin/go-humanize"
)

// TimeAgo renders a unix timestamp relative to now. Zero renders as "".
func TimeAgo(unix int64) string {
	return timeAgoAt(unix, time.Now())
}

func timeAgoAt(unix int64, now time.Time) string {
	if unix <= 0 {
		return ""
	}
	return humanize.RelTime(time.Unix(unix, 0), now, "ago", "from now")
}
