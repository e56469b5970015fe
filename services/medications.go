package services

import (
	"context"
	"strings"
	"time"

	"github.com/Sri-Charith/AI-HealthVault/helpers"
	"github.com/Sri-Charith/AI-HealthVault/logger"
	"github.com/Sri-Charith/AI-HealthVault/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicationService owns medication schedules, stock bookkeeping and the
// derived refill projection. The projection is recomputed eagerly on every
// mutation of stock, dose size, times or frequency, never at read time.
type MedicationService struct {
	store MedicationStore
	log   logger.Logger
	now   func() time.Time
}

func NewMedicationService(store MedicationStore, log logger.Logger) *MedicationService {
	return &MedicationService{store: store, log: log, now: time.Now}
}

// CreateMedicationInput carries the user-supplied fields for a new medication.
// StockQuantity and TabletsPerDose are optional; TabletsPerDose defaults to 1.
type CreateMedicationInput struct {
	TabletName     string
	Times          []string
	StartDate      string
	Frequency      string
	StockQuantity  *int
	TabletsPerDose *int
}

// Create validates and stores a new medication with its initial refill
// projection.
func (s *MedicationService) Create(ctx context.Context, userID string, input CreateMedicationInput) (*models.MedicationRecord, error) {
	name := strings.TrimSpace(input.TabletName)
	if name == "" {
		return nil, invalidInput("tablet name is required")
	}
	if len(input.Times) == 0 {
		return nil, invalidInput("at least one dose time is required")
	}
	if input.StartDate == "" {
		return nil, invalidInput("start date is required")
	}
	if _, err := helpers.ParseDay(input.StartDate); err != nil {
		return nil, invalidInput("%v", err)
	}
	if !models.ValidFrequency(input.Frequency) {
		return nil, invalidInput("unknown frequency %q", input.Frequency)
	}

	stock := 0
	if input.StockQuantity != nil {
		if *input.StockQuantity < 0 {
			return nil, invalidInput("stock quantity must be non-negative, got %d", *input.StockQuantity)
		}
		stock = *input.StockQuantity
	}
	perDose := 1
	if input.TabletsPerDose != nil {
		if *input.TabletsPerDose <= 0 {
			return nil, invalidInput("tablets per dose must be a positive number, got %d", *input.TabletsPerDose)
		}
		perDose = *input.TabletsPerDose
	}

	now := s.now()
	record := &models.MedicationRecord{
		ID:                  primitive.NewObjectID(),
		UserID:              userID,
		TabletName:          name,
		Times:               input.Times,
		StartDate:           input.StartDate,
		Frequency:           input.Frequency,
		StockQuantity:       stock,
		TabletsPerDose:      perDose,
		TakenLog:            []models.TakenEntry{},
		EstimatedRefillDate: ProjectRefillDate(now, stock, perDose, input.Times, input.Frequency),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	record.MedicationID = record.ID.Hex()

	if err := s.store.Insert(ctx, record); err != nil {
		return nil, storage("insert medication", err)
	}
	return record, nil
}

// List returns all of the user's medications.
func (s *MedicationService) List(ctx context.Context, userID string) ([]models.MedicationRecord, error) {
	records, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, storage("list medications", err)
	}
	return records, nil
}

// UpdateStock applies a partial update of stock quantity and tablets per dose,
// then reprojects the refill date from the resulting values.
func (s *MedicationService) UpdateStock(ctx context.Context, userID, medicationID string, stockQuantity, tabletsPerDose *int) (*models.MedicationRecord, error) {
	record, err := s.store.FindByID(ctx, userID, medicationID)
	if err != nil {
		return nil, storage("find medication", err)
	}
	if record == nil {
		return nil, ErrNotFound
	}

	if stockQuantity != nil {
		if *stockQuantity < 0 {
			return nil, invalidInput("stock quantity must be non-negative, got %d", *stockQuantity)
		}
		record.StockQuantity = *stockQuantity
	}
	if tabletsPerDose != nil {
		if *tabletsPerDose <= 0 {
			return nil, invalidInput("tablets per dose must be a positive number, got %d", *tabletsPerDose)
		}
		record.TabletsPerDose = *tabletsPerDose
	}

	record.EstimatedRefillDate = ProjectRefillDate(s.now(), record.StockQuantity, record.TabletsPerDose, record.Times, record.Frequency)
	record.UpdatedAt = s.now()

	if err := s.store.Update(ctx, record); err != nil {
		return nil, storage("update medication stock", err)
	}
	return record, nil
}

// MarkTaken appends (today, time) to the medication's taken log. The log is
// append-only; duplicate marks for the same slot are tolerated and left for
// readers to dedupe.
func (s *MedicationService) MarkTaken(ctx context.Context, userID, medicationID, doseTime string) error {
	if strings.TrimSpace(doseTime) == "" {
		return invalidInput("dose time is required")
	}
	record, err := s.store.FindByID(ctx, userID, medicationID)
	if err != nil {
		return storage("find medication", err)
	}
	if record == nil {
		return ErrNotFound
	}

	entry := models.TakenEntry{
		Date: s.now().Format(helpers.DayLayout),
		Time: doseTime,
	}
	if err := s.store.AppendTaken(ctx, userID, medicationID, entry); err != nil {
		return storage("mark medication taken", err)
	}
	return nil
}
