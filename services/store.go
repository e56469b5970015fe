package services

import (
	"context"

	"github.com/Sri-Charith/AI-HealthVault/models"
)

// FitnessStore is the persistence boundary for day-keyed fitness records.
// Implementations must enforce a unique (user_id, date) key so that
// InsertIfAbsent is atomic: under a concurrent first access exactly one
// record survives and every caller observes it.
type FitnessStore interface {
	// FindByDate returns the record for the exact day, or (nil, nil) when absent.
	FindByDate(ctx context.Context, userID, date string) (*models.FitnessRecord, error)
	// FindLatestBefore returns the user's most recent record with date < the
	// given day (any gap), or (nil, nil) when the user has no earlier record.
	FindLatestBefore(ctx context.Context, userID, date string) (*models.FitnessRecord, error)
	// InsertIfAbsent inserts the record unless one already exists for its
	// (user_id, date); either way it returns the canonical stored record.
	InsertIfAbsent(ctx context.Context, record *models.FitnessRecord) (*models.FitnessRecord, error)
	// IncrementSteps atomically adds delta to steps_walked.
	IncrementSteps(ctx context.Context, userID, date string, delta int) (*models.FitnessRecord, error)
	// Replace overwrites the mutable fields of an existing record in one write.
	Replace(ctx context.Context, record *models.FitnessRecord) error
	// FindRange returns records with firstDate <= date <= lastDate, ascending by date.
	FindRange(ctx context.Context, userID, firstDate, lastDate string) ([]models.FitnessRecord, error)
}

// MedicationStore is the persistence boundary for medication records.
type MedicationStore interface {
	Insert(ctx context.Context, record *models.MedicationRecord) error
	// FindByID returns (nil, nil) when no record matches the id for this user.
	FindByID(ctx context.Context, userID, medicationID string) (*models.MedicationRecord, error)
	FindByUser(ctx context.Context, userID string) ([]models.MedicationRecord, error)
	// Update overwrites stock, dose size and refill date in one write.
	Update(ctx context.Context, record *models.MedicationRecord) error
	// AppendTaken pushes one entry onto the append-only taken log.
	AppendTaken(ctx context.Context, userID, medicationID string, entry models.TakenEntry) error
}
