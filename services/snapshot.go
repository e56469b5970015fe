package services

import (
	"context"

	"github.com/Sri-Charith/AI-HealthVault/models"
)

// FitnessSnapshot is the read-shaped view of one day handed to the advice
// generator: numeric summaries only, no storage ids.
type FitnessSnapshot struct {
	Date         string            `json:"date"`
	StepsWalked  int               `json:"steps_walked"`
	Target       int               `json:"target"`
	StepsLeft    int               `json:"steps_left"`
	WorkoutType  string            `json:"workout_type,omitempty"`
	TotalVolume  float64           `json:"total_volume"`
	Exercises    []models.Exercise `json:"exercises"`
	ExerciseDone int               `json:"exercises_logged"`
}

// MedicationSnapshot summarizes one medication's schedule, stock and
// adherence for the advice generator. TakenToday is deduplicated by
// (date, time): the underlying log tolerates duplicate marks.
type MedicationSnapshot struct {
	TabletName          string   `json:"tablet_name"`
	Times               []string `json:"times"`
	Frequency           string   `json:"frequency"`
	StockQuantity       int      `json:"stock_quantity"`
	TabletsPerDose      int      `json:"tablets_per_dose"`
	EstimatedRefillDate string   `json:"estimated_refill_date,omitempty"`
	TakenToday          []string `json:"taken_today"`
}

// FitnessSnapshot builds the day's advice view, creating the record with
// carry-forward defaults when the day was never touched.
func (s *FitnessService) FitnessSnapshot(ctx context.Context, userID, date string) (*FitnessSnapshot, error) {
	record, err := s.GetOrCreate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	stepsLeft := record.Target - record.StepsWalked
	if stepsLeft < 0 {
		stepsLeft = 0
	}
	return &FitnessSnapshot{
		Date:         record.Date,
		StepsWalked:  record.StepsWalked,
		Target:       record.Target,
		StepsLeft:    stepsLeft,
		WorkoutType:  record.WorkoutType,
		TotalVolume:  record.TotalVolume,
		Exercises:    record.Exercises,
		ExerciseDone: len(record.Exercises),
	}, nil
}

// MedicationSnapshots builds the advice view for all of the user's
// medications, collapsing duplicate taken-log marks for the given day.
func (s *MedicationService) MedicationSnapshots(ctx context.Context, userID, today string) ([]MedicationSnapshot, error) {
	records, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]MedicationSnapshot, 0, len(records))
	for _, record := range records {
		snapshot := MedicationSnapshot{
			TabletName:     record.TabletName,
			Times:          record.Times,
			Frequency:      record.Frequency,
			StockQuantity:  record.StockQuantity,
			TabletsPerDose: record.TabletsPerDose,
			TakenToday:     dedupTakenTimes(record.TakenLog, today),
		}
		if record.EstimatedRefillDate != nil {
			snapshot.EstimatedRefillDate = record.EstimatedRefillDate.Format("2006-01-02")
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

func dedupTakenTimes(log []models.TakenEntry, date string) []string {
	seen := make(map[string]bool)
	times := []string{}
	for _, entry := range log {
		if entry.Date != date || seen[entry.Time] {
			continue
		}
		seen[entry.Time] = true
		times = append(times, entry.Time)
	}
	return times
}
