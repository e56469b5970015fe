package services

import (
	"context"

	"github.com/Sri-Charith/AI-HealthVault/helpers"
	"github.com/Sri-Charith/AI-HealthVault/logger"
	"github.com/Sri-Charith/AI-HealthVault/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FitnessService owns the daily health record lifecycle: lazy creation with
// carry-forward defaults, step accumulation, workout typing and exercise
// mutations with their maintained volume aggregate.
type FitnessService struct {
	store FitnessStore
	log   logger.Logger
	locks *keyedLocks
}

func NewFitnessService(store FitnessStore, log logger.Logger) *FitnessService {
	return &FitnessService{
		store: store,
		log:   log,
		locks: newKeyedLocks(),
	}
}

func dayKey(userID, date string) string {
	return userID + "|" + date
}

// GetOrCreate resolves the record for the exact day, creating it on first
// access. A brand-new record inherits its target from the user's most recent
// earlier record when that record's target was fixed for the month; otherwise
// the default target applies. Creation is idempotent per (user, date): the
// store's insert-if-absent resolves concurrent first accesses to one record.
func (s *FitnessService) GetOrCreate(ctx context.Context, userID, date string) (*models.FitnessRecord, error) {
	if _, err := helpers.ParseDay(date); err != nil {
		return nil, invalidInput("%v", err)
	}

	record, err := s.store.FindByDate(ctx, userID, date)
	if err != nil {
		return nil, storage("find fitness record", err)
	}
	if record != nil {
		return record, nil
	}

	target := models.DefaultStepTarget
	previous, err := s.store.FindLatestBefore(ctx, userID, date)
	if err != nil {
		return nil, storage("find previous fitness record", err)
	}
	if previous != nil && previous.FixedMonthly {
		target = previous.Target
	}

	fresh := &models.FitnessRecord{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      date,
		Target:    target,
		Exercises: []models.Exercise{},
	}
	created, err := s.store.InsertIfAbsent(ctx, fresh)
	if err != nil {
		return nil, storage("create fitness record", err)
	}
	return created, nil
}

// IncrementSteps adds a positive step delta to the day's record, creating it
// first when needed. The store-side increment is atomic, so concurrent step
// updates for the same day never lose counts.
func (s *FitnessService) IncrementSteps(ctx context.Context, userID, date string, delta int) (*models.FitnessRecord, error) {
	if delta <= 0 {
		return nil, invalidInput("steps must be a positive number, got %d", delta)
	}
	if _, err := s.GetOrCreate(ctx, userID, date); err != nil {
		return nil, err
	}
	record, err := s.store.IncrementSteps(ctx, userID, date, delta)
	if err != nil {
		return nil, storage("increment steps", err)
	}
	return record, nil
}

// SetWorkoutType labels the day; an empty workoutType clears the label.
func (s *FitnessService) SetWorkoutType(ctx context.Context, userID, date, workoutType string) (*models.FitnessRecord, error) {
	if workoutType != "" && !models.ValidWorkoutType(workoutType) {
		return nil, invalidInput("unknown workout type %q", workoutType)
	}

	unlock := s.locks.lock(dayKey(userID, date))
	defer unlock.Unlock()

	record, err := s.GetOrCreate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	record.WorkoutType = workoutType
	if err := s.store.Replace(ctx, record); err != nil {
		return nil, storage("set workout type", err)
	}
	return record, nil
}

// AddExercise appends a validated exercise to the day's record and bumps the
// volume aggregate. Validation happens before any write, so a bad set list
// leaves both the exercise arena and the total untouched.
func (s *FitnessService) AddExercise(ctx context.Context, userID, date, name, category string, sets []models.ExerciseSet, notes string) (*models.FitnessRecord, error) {
	unlock := s.locks.lock(dayKey(userID, date))
	defer unlock.Unlock()

	record, err := s.GetOrCreate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if _, err := AddExercise(record, name, category, sets, notes); err != nil {
		return nil, err
	}
	if err := s.store.Replace(ctx, record); err != nil {
		return nil, storage("add exercise", err)
	}
	return record, nil
}

// UpdateExercise replaces an existing exercise's sets (and notes when given)
// and moves the volume aggregate by the old/new delta.
func (s *FitnessService) UpdateExercise(ctx context.Context, userID, date, exerciseID string, sets []models.ExerciseSet, notes *string) (*models.FitnessRecord, error) {
	unlock := s.locks.lock(dayKey(userID, date))
	defer unlock.Unlock()

	record, err := s.store.FindByDate(ctx, userID, date)
	if err != nil {
		return nil, storage("find fitness record", err)
	}
	if record == nil {
		return nil, ErrNotFound
	}

	result, err := UpdateExerciseSets(record, exerciseID, sets, notes)
	if err != nil {
		return nil, err
	}
	if result.ClampHit {
		s.log.Warnf("total volume clamped to zero for user=%s date=%s exercise=%s", userID, date, exerciseID)
	}
	if err := s.store.Replace(ctx, record); err != nil {
		return nil, storage("update exercise", err)
	}
	return record, nil
}

// RemoveExercise deletes the exercise and subtracts its volume.
func (s *FitnessService) RemoveExercise(ctx context.Context, userID, date, exerciseID string) (*models.FitnessRecord, error) {
	unlock := s.locks.lock(dayKey(userID, date))
	defer unlock.Unlock()

	record, err := s.store.FindByDate(ctx, userID, date)
	if err != nil {
		return nil, storage("find fitness record", err)
	}
	if record == nil {
		return nil, ErrNotFound
	}

	_, clampHit, err := RemoveExercise(record, exerciseID)
	if err != nil {
		return nil, err
	}
	if clampHit {
		s.log.Warnf("total volume clamped to zero for user=%s date=%s exercise=%s", userID, date, exerciseID)
	}
	if err := s.store.Replace(ctx, record); err != nil {
		return nil, storage("remove exercise", err)
	}
	return record, nil
}

// ExercisesByCategory filters the day's exercises; a day without a record
// simply has none.
func (s *FitnessService) ExercisesByCategory(ctx context.Context, userID, date, category string) ([]models.Exercise, error) {
	record, err := s.store.FindByDate(ctx, userID, date)
	if err != nil {
		return nil, storage("find fitness record", err)
	}
	exercises := []models.Exercise{}
	if record == nil {
		return exercises, nil
	}
	for _, exercise := range record.Exercises {
		if exercise.Category == category {
			exercises = append(exercises, exercise)
		}
	}
	return exercises, nil
}

// Monthly lists the month's existing records ascending by date. Days never
// touched have no record and are simply absent from the result.
func (s *FitnessService) Monthly(ctx context.Context, userID string, month string) ([]models.FitnessRecord, error) {
	firstOfMonth, err := helpers.ParseMonth(month)
	if err != nil {
		return nil, invalidInput("%v", err)
	}
	first, last := helpers.MonthBounds(firstOfMonth)
	records, err := s.store.FindRange(ctx, userID, first, last)
	if err != nil {
		return nil, storage("list monthly fitness records", err)
	}
	return records, nil
}
