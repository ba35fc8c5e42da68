// ABOUTME: Calendar date range generation for scoring windows.
// ABOUTME: Produces last-N-days day strings, most recent first.
package scoring

import (
	"time"

	"github.com/harperreed/lifelog/internal/models"
)

// DateRange returns the last `days` calendar days ending at today,
// most recent first: index 0 is today, index days-1 is the oldest.
// Today is injected so callers and tests control the clock.
func DateRange(today time.Time, days int) []string {
	if days <= 0 {
		return nil
	}
	dates := make([]string, days)
	for i := 0; i < days; i++ {
		dates[i] = models.Day(today.AddDate(0, 0, -i))
	}
	return dates
}
