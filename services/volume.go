package services

import (
	"strings"

	"github.com/Sri-Charith/AI-HealthVault/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultRestTime = 60

// ValidateSets checks a set list before any of it is applied: every set must
// have positive reps and non-negative weight. The whole list is rejected on
// the first offending set, so a failed add or update never leaves a partial
// insert behind.
func ValidateSets(sets []models.ExerciseSet) error {
	if len(sets) == 0 {
		return &ValidationError{SetIndex: -1, Reason: "at least one set is required"}
	}
	for i, set := range sets {
		if set.Reps <= 0 {
			return &ValidationError{SetIndex: i, Reason: "reps must be a positive number"}
		}
		if set.Weight < 0 {
			return &ValidationError{SetIndex: i, Reason: "weight must be a non-negative number"}
		}
	}
	return nil
}

func normalizeSets(sets []models.ExerciseSet) []models.ExerciseSet {
	cleaned := make([]models.ExerciseSet, len(sets))
	for i, set := range sets {
		if set.RestTime <= 0 {
			set.RestTime = defaultRestTime
		}
		cleaned[i] = set
	}
	return cleaned
}

// AddExercise validates the new exercise, appends it to the record's arena
// and adds its volume to the running total. Nothing is appended on failure.
func AddExercise(record *models.FitnessRecord, name, category string, sets []models.ExerciseSet, notes string) (*models.Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInput("exercise name is required")
	}
	if !models.ValidExerciseCategory(category) {
		return nil, invalidInput("unknown exercise category %q", category)
	}
	if err := ValidateSets(sets); err != nil {
		return nil, err
	}

	exercise := models.Exercise{
		ExerciseID: primitive.NewObjectID().Hex(),
		Name:       name,
		Category:   category,
		Sets:       normalizeSets(sets),
		Notes:      strings.TrimSpace(notes),
	}
	record.Exercises = append(record.Exercises, exercise)
	record.TotalVolume += exercise.Volume()
	return &record.Exercises[len(record.Exercises)-1], nil
}

// UpdateExerciseSets replaces an exercise's sets (and optionally notes) and
// moves the total volume by the delta between old and new sets. The clamp to
// zero guards against accumulated floating drift ever pushing the total
// negative; ClampHit reports when it fired so callers can log it.
type UpdateResult struct {
	Exercise *models.Exercise
	ClampHit bool
}

func UpdateExerciseSets(record *models.FitnessRecord, exerciseID string, sets []models.ExerciseSet, notes *string) (UpdateResult, error) {
	exercise, _ := record.ExerciseByID(exerciseID)
	if exercise == nil {
		return UpdateResult{}, ErrNotFound
	}
	if err := ValidateSets(sets); err != nil {
		return UpdateResult{}, err
	}

	oldVolume := exercise.Volume()
	exercise.Sets = normalizeSets(sets)
	if notes != nil {
		exercise.Notes = strings.TrimSpace(*notes)
	}
	newVolume := exercise.Volume()

	total := record.TotalVolume - oldVolume + newVolume
	clamped := total < 0
	if clamped {
		total = 0
	}
	record.TotalVolume = total
	return UpdateResult{Exercise: exercise, ClampHit: clamped}, nil
}

// RemoveExercise drops the exercise from the arena and subtracts its volume,
// clamped at zero like UpdateExerciseSets.
func RemoveExercise(record *models.FitnessRecord, exerciseID string) (removedVolume float64, clampHit bool, err error) {
	exercise, index := record.ExerciseByID(exerciseID)
	if exercise == nil {
		return 0, false, ErrNotFound
	}

	removedVolume = exercise.Volume()
	record.Exercises = append(record.Exercises[:index], record.Exercises[index+1:]...)
	total := record.TotalVolume - removedVolume
	if total < 0 {
		total = 0
		clampHit = true
	}
	record.TotalVolume = total
	return removedVolume, clampHit, nil
}
