package observability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is the metrics window used when none is given.
const DefaultWindow = "7d"

// ParseSince resolves a window such as "7d", "30d" or "24h" to the instant
// that far before now. An empty window means DefaultWindow.
func ParseSince(window string, now time.Time) (time.Time, error) {
	window = strings.TrimSpace(window)
	if window == "" {
		window = DefaultWindow
	}
	if len(window) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q (use e.g. 7d, 30d, 24h)", window)
	}

	n, err := strconv.Atoi(window[:len(window)-1])
	if err != nil || n < 0 {
		return time.Time{}, fmt.Errorf("invalid duration %q (use e.g. 7d, 30d, 24h)", window)
	}
	switch window[len(window)-1] {
	case 'd':
		return now.AddDate(0, 0, -n), nil
	case 'h':
		return now.Add(-time.Duration(n) * time.Hour), nil
	}
	return time.Time{}, fmt.Errorf("unsupported duration format %q (use e.g. 7d, 30d, 24h)", window)
}
