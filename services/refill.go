package services

import (
	"math"
	"time"

	"github.com/Sri-Charith/AI-HealthVault/models"
)

// refillBufferDays is subtracted from the projected depletion date so the
// user is nudged to refill before actually running out.
const refillBufferDays = 3

// ProjectRefillDate estimates when a medication's stock runs out, minus the
// safety buffer, relative to now. It returns nil when there is nothing to
// project: no stock, no tablets per dose, or no dose times.
//
// One "cycle" is one pass over the dose times; Weekly and Monthly cycles are
// converted with fixed multipliers (a month counts as 30 days — approximate
// on purpose, not calendar-accurate).
//
// The result can lie in the past when supply is already critically low;
// callers treat that as a low-stock signal, not an error.
func ProjectRefillDate(now time.Time, stockQuantity, tabletsPerDose int, times []string, frequency string) *time.Time {
	if stockQuantity <= 0 || tabletsPerDose <= 0 || len(times) == 0 {
		return nil
	}

	dosesPerCycle := len(times)
	tabletsPerCycle := dosesPerCycle * tabletsPerDose
	cyclesUntilEmpty := float64(stockQuantity) / float64(tabletsPerCycle)

	var dayMultiplier float64
	switch frequency {
	case models.FrequencyWeekly:
		dayMultiplier = 7
	case models.FrequencyMonthly:
		dayMultiplier = 30
	default:
		dayMultiplier = 1
	}

	daysUntilEmpty := int(math.Floor(cyclesUntilEmpty * dayMultiplier))
	refill := now.AddDate(0, 0, daysUntilEmpty-refillBufferDays)
	return &refill
}
