package services

import (
	"context"
	"testing"

	"github.com/Sri-Charith/AI-HealthVault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTargetSingleDay(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	record, err := svc.SetTarget(ctx, "user-1", "2024-04-10", 8000)
	require.NoError(t, err)

	assert.Equal(t, 8000, record.Target)
	assert.False(t, record.FixedMonthly)
}

func TestSetTargetRejectsNonPositive(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	for _, target := range []int{0, -100} {
		_, err := svc.SetTarget(ctx, "user-1", "2024-04-10", target)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = svc.SetMonthlyTarget(ctx, "user-1", "2024-04-10", target)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestSetMonthlyTargetCoversWholeMonth(t *testing.T) {
	svc, store := newFitnessService()
	ctx := context.Background()

	summary, err := svc.SetMonthlyTarget(ctx, "user-1", "2024-04-10", 8000)
	require.NoError(t, err)

	assert.Equal(t, 30, summary.DaysUpdated)
	assert.Equal(t, "2024-04-01", summary.FirstDate)
	assert.Equal(t, "2024-04-30", summary.LastDate)

	records, err := store.FindRange(ctx, "user-1", "2024-04-01", "2024-04-30")
	require.NoError(t, err)
	require.Len(t, records, 30)
	for _, record := range records {
		assert.Equal(t, 8000, record.Target)
		assert.True(t, record.FixedMonthly)
	}
}

func TestSetMonthlyTargetHandlesLeapFebruary(t *testing.T) {
	svc, _ := newFitnessService()

	summary, err := svc.SetMonthlyTarget(context.Background(), "user-1", "2024-02-14", 6000)
	require.NoError(t, err)
	assert.Equal(t, 29, summary.DaysUpdated)
	assert.Equal(t, "2024-02-29", summary.LastDate)
}

func TestSetMonthlyTargetPreservesExistingDayData(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	_, err := svc.IncrementSteps(ctx, "user-1", "2024-04-05", 4200)
	require.NoError(t, err)
	_, err = svc.AddExercise(ctx, "user-1", "2024-04-05", "Squat", models.CategoryLegs,
		[]models.ExerciseSet{{Reps: 5, Weight: 100}}, "")
	require.NoError(t, err)
	_, err = svc.SetWorkoutType(ctx, "user-1", "2024-04-05", models.WorkoutLegs)
	require.NoError(t, err)

	_, err = svc.SetMonthlyTarget(ctx, "user-1", "2024-04-10", 8000)
	require.NoError(t, err)

	record, err := svc.GetOrCreate(ctx, "user-1", "2024-04-05")
	require.NoError(t, err)
	assert.Equal(t, 8000, record.Target)
	assert.True(t, record.FixedMonthly)
	assert.Equal(t, 4200, record.StepsWalked)
	assert.Len(t, record.Exercises, 1)
	assert.Equal(t, models.WorkoutLegs, record.WorkoutType)
}

func TestSetMonthlyTargetIsIdempotent(t *testing.T) {
	svc, store := newFitnessService()
	ctx := context.Background()

	first, err := svc.SetMonthlyTarget(ctx, "user-1", "2024-04-10", 8000)
	require.NoError(t, err)
	second, err := svc.SetMonthlyTarget(ctx, "user-1", "2024-04-10", 8000)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	records, err := store.FindRange(ctx, "user-1", "2024-04-01", "2024-04-30")
	require.NoError(t, err)
	assert.Len(t, records, 30)
	for _, record := range records {
		assert.Equal(t, 8000, record.Target)
		assert.True(t, record.FixedMonthly)
	}
}

func TestSingleDayOverrideClearsFixedMonthly(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	_, err := svc.SetMonthlyTarget(ctx, "user-1", "2024-04-10", 8000)
	require.NoError(t, err)

	record, err := svc.SetTarget(ctx, "user-1", "2024-04-15", 3000)
	require.NoError(t, err)
	assert.Equal(t, 3000, record.Target)
	assert.False(t, record.FixedMonthly)

	// Other days in the month keep the propagated target.
	other, err := svc.GetOrCreate(ctx, "user-1", "2024-04-16")
	require.NoError(t, err)
	assert.Equal(t, 8000, other.Target)
	assert.True(t, other.FixedMonthly)
}
