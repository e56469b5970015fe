package services

import (
	"context"
	"testing"
	"time"

	"github.com/Sri-Charith/AI-HealthVault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitnessSnapshotShapesDayData(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	_, err := svc.IncrementSteps(ctx, "user-1", "2024-03-05", 600)
	require.NoError(t, err)
	_, err = svc.AddExercise(ctx, "user-1", "2024-03-05", "Bench Press", models.CategoryPush,
		[]models.ExerciseSet{{Reps: 10, Weight: 60}}, "")
	require.NoError(t, err)

	snapshot, err := svc.FitnessSnapshot(ctx, "user-1", "2024-03-05")
	require.NoError(t, err)

	assert.Equal(t, 600, snapshot.StepsWalked)
	assert.Equal(t, models.DefaultStepTarget, snapshot.Target)
	assert.Equal(t, 400, snapshot.StepsLeft)
	assert.Equal(t, 1, snapshot.ExerciseDone)
	assert.InDelta(t, 600, snapshot.TotalVolume, 1e-9)
}

func TestFitnessSnapshotStepsLeftFloorsAtZero(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	_, err := svc.IncrementSteps(ctx, "user-1", "2024-03-05", 2500)
	require.NoError(t, err)

	snapshot, err := svc.FitnessSnapshot(ctx, "user-1", "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.StepsLeft)
}

func TestMedicationSnapshotsDedupeTakenLog(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := newMedicationService(now)
	ctx := context.Background()

	record, err := svc.Create(ctx, "user-1", CreateMedicationInput{
		TabletName:    "Metformin",
		Times:         []string{"08:00", "20:00"},
		StartDate:     "2024-03-01",
		Frequency:     models.FrequencyDaily,
		StockQuantity: intPtr(30),
	})
	require.NoError(t, err)

	// Duplicate marks for the same slot plus a mark from another day.
	require.NoError(t, svc.MarkTaken(ctx, "user-1", record.MedicationID, "08:00"))
	require.NoError(t, svc.MarkTaken(ctx, "user-1", record.MedicationID, "08:00"))
	require.NoError(t, svc.MarkTaken(ctx, "user-1", record.MedicationID, "20:00"))

	snapshots, err := svc.MedicationSnapshots(ctx, "user-1", "2024-03-01")
	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	assert.Equal(t, []string{"08:00", "20:00"}, snapshots[0].TakenToday)
	assert.Equal(t, "2024-03-13", snapshots[0].EstimatedRefillDate)

	other, err := svc.MedicationSnapshots(ctx, "user-1", "2024-03-02")
	require.NoError(t, err)
	assert.Empty(t, other[0].TakenToday)
}
