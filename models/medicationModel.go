package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Renewal frequencies for a medication schedule.
const (
	FrequencyDaily   = "Daily"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
)

// TakenEntry records one dose actually taken. The log is append-only and may
// contain duplicate (date, time) pairs; consumers dedupe on read.
type TakenEntry struct {
	Date string `json:"date" bson:"date"`
	Time string `json:"time" bson:"time"`
}

// MedicationRecord is one medication a user tracks. Unlike fitness records it
// is not keyed by day; the schedule (Times × Frequency) plus stock drive the
// refill projection.
type MedicationRecord struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	MedicationID   string             `json:"medication_id" bson:"medication_id"`
	UserID         string             `json:"user_id" bson:"user_id"`
	TabletName     string             `json:"tablet_name" bson:"tablet_name"`
	Times          []string           `json:"times" bson:"times"`
	StartDate      string             `json:"start_date" bson:"start_date"`
	Frequency      string             `json:"frequency" bson:"frequency"`
	StockQuantity  int                `json:"stock_quantity" bson:"stock_quantity"`
	TabletsPerDose int                `json:"tablets_per_dose" bson:"tablets_per_dose"`
	TakenLog       []TakenEntry       `json:"taken_log" bson:"taken_log"`
	// EstimatedRefillDate is derived; it is overwritten on every mutation of
	// stock, dose size, times or frequency. Nil when there is nothing to
	// project (no stock, no dose, no times).
	EstimatedRefillDate *time.Time `json:"estimated_refill_date,omitempty" bson:"estimated_refill_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" bson:"updated_at"`
}

// ValidFrequency reports whether f is one of the renewal frequencies.
func ValidFrequency(f string) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}
