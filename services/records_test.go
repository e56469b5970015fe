package services

import (
	"context"
	"sync"
	"testing"

	"github.com/Sri-Charith/AI-HealthVault/logger"
	"github.com/Sri-Charith/AI-HealthVault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFitnessService() (*FitnessService, *InMemoryFitnessStore) {
	store := NewInMemoryFitnessStore()
	return NewFitnessService(store, logger.New("error")), store
}

func TestGetOrCreateFirstAccessDefaults(t *testing.T) {
	svc, _ := newFitnessService()

	record, err := svc.GetOrCreate(context.Background(), "user-1", "2024-03-05")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", record.Date)
	assert.Equal(t, models.DefaultStepTarget, record.Target)
	assert.False(t, record.FixedMonthly)
	assert.Equal(t, 0, record.StepsWalked)
	assert.Equal(t, 0.0, record.TotalVolume)
	assert.Empty(t, record.Exercises)
}

func TestGetOrCreateRejectsBadDate(t *testing.T) {
	svc, _ := newFitnessService()
	_, err := svc.GetOrCreate(context.Background(), "user-1", "03/05/2024")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOrCreateCarriesForwardFixedMonthlyTarget(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	_, err := svc.SetMonthlyTarget(ctx, "user-1", "2024-02-10", 5000)
	require.NoError(t, err)

	// Gap of several days with no record in between: the nearest earlier
	// record still supplies the target.
	record, err := svc.GetOrCreate(ctx, "user-1", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 5000, record.Target)
	assert.False(t, record.FixedMonthly)
}

func TestGetOrCreateIgnoresNonFixedPriorTarget(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	_, err := svc.SetTarget(ctx, "user-1", "2024-02-10", 9000)
	require.NoError(t, err)

	record, err := svc.GetOrCreate(ctx, "user-1", "2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStepTarget, record.Target)
}

func TestGetOrCreateIsIdempotentPerDay(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	first, err := svc.GetOrCreate(ctx, "user-1", "2024-03-05")
	require.NoError(t, err)
	second, err := svc.GetOrCreate(ctx, "user-1", "2024-03-05")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestGetOrCreateConcurrentFirstAccessYieldsOneRecord(t *testing.T) {
	svc, store := newFitnessService()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := svc.GetOrCreate(ctx, "user-1", "2024-03-05")
			if assert.NoError(t, err) {
				ids <- record.ID.Hex()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, 1)

	records, err := store.FindRange(ctx, "user-1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestIncrementStepsAccumulates(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	_, err := svc.IncrementSteps(ctx, "user-1", "2024-03-05", 500)
	require.NoError(t, err)
	record, err := svc.IncrementSteps(ctx, "user-1", "2024-03-05", 300)
	require.NoError(t, err)

	assert.Equal(t, 800, record.StepsWalked)
}

func TestIncrementStepsRejectsNonPositive(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	_, err := svc.IncrementSteps(ctx, "user-1", "2024-03-05", 500)
	require.NoError(t, err)

	for _, delta := range []int{0, -10} {
		_, err := svc.IncrementSteps(ctx, "user-1", "2024-03-05", delta)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	record, err := svc.GetOrCreate(ctx, "user-1", "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 500, record.StepsWalked)
}

func TestSetWorkoutTypeAndClear(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	record, err := svc.SetWorkoutType(ctx, "user-1", "2024-03-05", models.WorkoutLegs)
	require.NoError(t, err)
	assert.Equal(t, models.WorkoutLegs, record.WorkoutType)

	record, err = svc.SetWorkoutType(ctx, "user-1", "2024-03-05", "")
	require.NoError(t, err)
	assert.Equal(t, "", record.WorkoutType)
}

func TestSetWorkoutTypeRejectsUnknown(t *testing.T) {
	svc, _ := newFitnessService()
	_, err := svc.SetWorkoutType(context.Background(), "user-1", "2024-03-05", "swimming")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExerciseMutationsPersistThroughService(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	record, err := svc.AddExercise(ctx, "user-1", "2024-03-05", "Bench Press", models.CategoryPush,
		[]models.ExerciseSet{{Reps: 10, Weight: 60}}, "felt strong")
	require.NoError(t, err)
	require.Len(t, record.Exercises, 1)
	id := record.Exercises[0].ExerciseID

	record, err = svc.UpdateExercise(ctx, "user-1", "2024-03-05", id,
		[]models.ExerciseSet{{Reps: 8, Weight: 80}}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 640, record.TotalVolume, 1e-9)

	record, err = svc.RemoveExercise(ctx, "user-1", "2024-03-05", id)
	require.NoError(t, err)
	assert.Empty(t, record.Exercises)
	assert.Equal(t, 0.0, record.TotalVolume)
}

func TestUpdateExerciseOnMissingDay(t *testing.T) {
	svc, _ := newFitnessService()
	_, err := svc.UpdateExercise(context.Background(), "user-1", "2024-03-05", "e1",
		[]models.ExerciseSet{{Reps: 5, Weight: 10}}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExercisesByCategory(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	_, err := svc.AddExercise(ctx, "user-1", "2024-03-05", "Bench Press", models.CategoryPush,
		[]models.ExerciseSet{{Reps: 10, Weight: 60}}, "")
	require.NoError(t, err)
	_, err = svc.AddExercise(ctx, "user-1", "2024-03-05", "Row", models.CategoryPull,
		[]models.ExerciseSet{{Reps: 10, Weight: 40}}, "")
	require.NoError(t, err)

	push, err := svc.ExercisesByCategory(ctx, "user-1", "2024-03-05", models.CategoryPush)
	require.NoError(t, err)
	require.Len(t, push, 1)
	assert.Equal(t, "Bench Press", push[0].Name)

	none, err := svc.ExercisesByCategory(ctx, "user-1", "2024-03-06", models.CategoryPush)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMonthlyListsAscending(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	for _, date := range []string{"2024-03-20", "2024-03-05", "2024-03-12"} {
		_, err := svc.GetOrCreate(ctx, "user-1", date)
		require.NoError(t, err)
	}
	_, err := svc.GetOrCreate(ctx, "user-1", "2024-04-01")
	require.NoError(t, err)

	records, err := svc.Monthly(ctx, "user-1", "2024-03")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-03-05", records[0].Date)
	assert.Equal(t, "2024-03-12", records[1].Date)
	assert.Equal(t, "2024-03-20", records[2].Date)
}

func TestMonthlyRejectsBadMonth(t *testing.T) {
	svc, _ := newFitnessService()
	_, err := svc.Monthly(context.Background(), "user-1", "March 2024")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUsersAreIndependent(t *testing.T) {
	svc, _ := newFitnessService()
	ctx := context.Background()

	_, err := svc.SetMonthlyTarget(ctx, "user-1", "2024-03-10", 7000)
	require.NoError(t, err)

	record, err := svc.GetOrCreate(ctx, "user-2", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultStepTarget, record.Target)
}
