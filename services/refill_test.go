package services

import (
	"testing"
	"time"

	"github.com/Sri-Charith/AI-HealthVault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectionNow = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

func TestProjectRefillDateDaily(t *testing.T) {
	// 30 tablets, 1 per dose, 2 doses per day: 15 days of supply,
	// minus the 3-day buffer.
	refill := ProjectRefillDate(projectionNow, 30, 1, []string{"08:00", "20:00"}, models.FrequencyDaily)
	require.NotNil(t, refill)
	assert.Equal(t, projectionNow.AddDate(0, 0, 12), *refill)
}

func TestProjectRefillDateWeekly(t *testing.T) {
	// 10 tablets, 1 per dose, 1 dose per weekly cycle: 10 cycles = 70 days.
	refill := ProjectRefillDate(projectionNow, 10, 1, []string{"08:00"}, models.FrequencyWeekly)
	require.NotNil(t, refill)
	assert.Equal(t, projectionNow.AddDate(0, 0, 67), *refill)
}

func TestProjectRefillDateMonthlyUsesThirtyDayCycle(t *testing.T) {
	// The monthly cycle is a fixed 30 days regardless of calendar month length.
	refill := ProjectRefillDate(projectionNow, 2, 1, []string{"08:00"}, models.FrequencyMonthly)
	require.NotNil(t, refill)
	assert.Equal(t, projectionNow.AddDate(0, 0, 57), *refill)
}

func TestProjectRefillDateFloorsFractionalCycles(t *testing.T) {
	// 5 tablets over 2 doses/day of 1 tablet: 2.5 cycles -> floor(2.5) = 2 days.
	refill := ProjectRefillDate(projectionNow, 5, 1, []string{"08:00", "20:00"}, models.FrequencyDaily)
	require.NotNil(t, refill)
	assert.Equal(t, projectionNow.AddDate(0, 0, 2-3), *refill)
}

func TestProjectRefillDateCanBeInThePast(t *testing.T) {
	// Critically low supply: the projection lands before today. That is a
	// low-stock signal for the caller, not an error.
	refill := ProjectRefillDate(projectionNow, 1, 1, []string{"08:00"}, models.FrequencyDaily)
	require.NotNil(t, refill)
	assert.True(t, refill.Before(projectionNow))
}

func TestProjectRefillDateNothingToProject(t *testing.T) {
	assert.Nil(t, ProjectRefillDate(projectionNow, 0, 1, []string{"08:00"}, models.FrequencyDaily))
	assert.Nil(t, ProjectRefillDate(projectionNow, 30, 0, []string{"08:00"}, models.FrequencyDaily))
	assert.Nil(t, ProjectRefillDate(projectionNow, 30, 1, nil, models.FrequencyDaily))
}

func TestProjectRefillDateUnknownFrequencyDefaultsToDaily(t *testing.T) {
	daily := ProjectRefillDate(projectionNow, 30, 1, []string{"08:00"}, models.FrequencyDaily)
	unknown := ProjectRefillDate(projectionNow, 30, 1, []string{"08:00"}, "Fortnightly")
	require.NotNil(t, daily)
	require.NotNil(t, unknown)
	assert.Equal(t, *daily, *unknown)
}
