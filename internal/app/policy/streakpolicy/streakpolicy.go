// Package streakpolicy owns the daily reset and streak transition.
//
// Rollover rules:
//   - A user's daily tracking always reflects the current calendar day in the
//     configured reset zone; the transition runs lazily whenever a record is
//     loaded for mutation, never from a timer
//   - Crossing a day boundary first closes out the watermarked day: if its
//     target was set and met, the streak extends; otherwise it breaks
//   - The transition is idempotent within a day: once the watermark equals
//     today, further saves are no-ops
//   - A malformed stored watermark is repaired to today without touching any
//     other field, so a bad date can never corrupt counters or streaks
package streakpolicy

import (
	"time"

	"github.com/salesboard/salesboard/internal/app/system/clock"
	"github.com/salesboard/salesboard/internal/domain/models"
)

// Apply advances u's daily tracking to today (a clock.DateLayout string).
// It reports whether a day-boundary transition ran.
func Apply(u *models.User, today string) bool {
	if u.LastResetDate == today {
		return false
	}

	// Records are created with the watermark set to their creation day, so an
	// empty or unparseable value means corrupted state. Repair the watermark
	// and leave everything else alone rather than closing out a phantom day.
	if _, err := time.Parse(clock.DateLayout, u.LastResetDate); err != nil {
		u.LastResetDate = today
		return false
	}

	// Close out the day being left behind.
	wasAchieved := u.DailyTarget > 0 && u.TodayFTDs >= u.DailyTarget
	if wasAchieved {
		u.CurrentStreak++
		u.TotalDaysAchieved++
		if u.CurrentStreak > u.LongestStreak {
			u.LongestStreak = u.CurrentStreak
		}
	} else {
		u.CurrentStreak = 0
	}

	u.TodayFTDs = 0
	u.DailyTargetAchieved = false
	u.LastResetDate = today
	return true
}
