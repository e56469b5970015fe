package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout types a day can be labelled with. An empty WorkoutType means the
// user has not picked one for that day.
const (
	WorkoutPush     = "push"
	WorkoutPull     = "pull"
	WorkoutLegs     = "legs"
	WorkoutRest     = "rest"
	WorkoutCardio   = "cardio"
	WorkoutFullBody = "full-body"
)

// Exercise categories accepted when logging strength work.
const (
	CategoryPush = "push"
	CategoryPull = "pull"
	CategoryLegs = "legs"
	CategoryCore = "core"
)

// DefaultStepTarget is used when no earlier record carries a monthly target forward.
const DefaultStepTarget = 1000

// ExerciseSet is a single set within an exercise. Weight 0 means bodyweight.
type ExerciseSet struct {
	Reps     int     `json:"reps" bson:"reps"`
	Weight   float64 `json:"weight" bson:"weight"`
	RestTime int     `json:"rest_time" bson:"rest_time"`
}

// Volume is the weight moved in this set.
func (s ExerciseSet) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

// Exercise is owned by exactly one FitnessRecord and addressed by ExerciseID
// within it. It is never referenced from outside its record.
type Exercise struct {
	ExerciseID string        `json:"exercise_id" bson:"exercise_id"`
	Name       string        `json:"name" bson:"name"`
	Category   string        `json:"category" bson:"category"`
	Sets       []ExerciseSet `json:"sets" bson:"sets"`
	Notes      string        `json:"notes" bson:"notes"`
}

// Volume sums reps×weight over the exercise's sets.
func (e Exercise) Volume() float64 {
	var total float64
	for _, set := range e.Sets {
		total += set.Volume()
	}
	return total
}

// FitnessRecord holds one user's activity for one calendar day.
// Date is always "YYYY-MM-DD"; (UserID, Date) is unique.
type FitnessRecord struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	UserID       string             `json:"user_id" bson:"user_id"`
	Date         string             `json:"date" bson:"date"`
	StepsWalked  int                `json:"steps_walked" bson:"steps_walked"`
	Target       int                `json:"target" bson:"target"`
	FixedMonthly bool               `json:"fixed_monthly" bson:"fixed_monthly"`
	WorkoutType  string             `json:"workout_type,omitempty" bson:"workout_type,omitempty"`
	Exercises    []Exercise         `json:"exercises" bson:"exercises"`
	// TotalVolume always equals the sum of reps×weight over all exercises'
	// sets; it is maintained by delta on every exercise mutation.
	TotalVolume     float64 `json:"total_volume" bson:"total_volume"`
	WorkoutDuration float64 `json:"workout_duration" bson:"workout_duration"`
}

// ExerciseByID finds an exercise in the record's arena. The second return is
// the index, -1 when absent.
func (r *FitnessRecord) ExerciseByID(exerciseID string) (*Exercise, int) {
	for i := range r.Exercises {
		if r.Exercises[i].ExerciseID == exerciseID {
			return &r.Exercises[i], i
		}
	}
	return nil, -1
}

// RecomputedVolume is the from-scratch total volume over every exercise.
func (r *FitnessRecord) RecomputedVolume() float64 {
	var total float64
	for _, exercise := range r.Exercises {
		total += exercise.Volume()
	}
	return total
}

// ValidWorkoutType reports whether t names a known workout day type.
func ValidWorkoutType(t string) bool {
	switch t {
	case WorkoutPush, WorkoutPull, WorkoutLegs, WorkoutRest, WorkoutCardio, WorkoutFullBody:
		return true
	}
	return false
}

// ValidExerciseCategory reports whether c is accepted for logged exercises.
func ValidExerciseCategory(c string) bool {
	switch c {
	case CategoryPush, CategoryPull, CategoryLegs, CategoryCore:
		return true
	}
	return false
}
