package services

import (
	"context"
	"sort"
	"sync"

	"github.com/Sri-Charith/AI-HealthVault/models"
)

// InMemoryFitnessStore keeps fitness records in a map for local development
// and tests. It honors the same contract as the Mongo store: one record per
// (user, date), insert-if-absent returning the canonical record.
type InMemoryFitnessStore struct {
	mu      sync.RWMutex
	records map[string]*models.FitnessRecord
}

func NewInMemoryFitnessStore() *InMemoryFitnessStore {
	return &InMemoryFitnessStore{records: make(map[string]*models.FitnessRecord)}
}

func fitnessKey(userID, date string) string {
	return userID + "|" + date
}

func cloneRecord(r *models.FitnessRecord) *models.FitnessRecord {
	clone := *r
	clone.Exercises = make([]models.Exercise, len(r.Exercises))
	for i, e := range r.Exercises {
		sets := make([]models.ExerciseSet, len(e.Sets))
		copy(sets, e.Sets)
		e.Sets = sets
		clone.Exercises[i] = e
	}
	return &clone
}

func (s *InMemoryFitnessStore) FindByDate(ctx context.Context, userID, date string) (*models.FitnessRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[fitnessKey(userID, date)]
	if !ok {
		return nil, nil
	}
	return cloneRecord(record), nil
}

func (s *InMemoryFitnessStore) FindLatestBefore(ctx context.Context, userID, date string) (*models.FitnessRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *models.FitnessRecord
	for _, record := range s.records {
		if record.UserID != userID || record.Date >= date {
			continue
		}
		if latest == nil || record.Date > latest.Date {
			latest = record
		}
	}
	if latest == nil {
		return nil, nil
	}
	return cloneRecord(latest), nil
}

func (s *InMemoryFitnessStore) InsertIfAbsent(ctx context.Context, record *models.FitnessRecord) (*models.FitnessRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := fitnessKey(record.UserID, record.Date)
	if existing, ok := s.records[key]; ok {
		return cloneRecord(existing), nil
	}
	s.records[key] = cloneRecord(record)
	return cloneRecord(record), nil
}

func (s *InMemoryFitnessStore) IncrementSteps(ctx context.Context, userID, date string, delta int) (*models.FitnessRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[fitnessKey(userID, date)]
	if !ok {
		return nil, ErrNotFound
	}
	record.StepsWalked += delta
	return cloneRecord(record), nil
}

func (s *InMemoryFitnessStore) Replace(ctx context.Context, record *models.FitnessRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := fitnessKey(record.UserID, record.Date)
	existing, ok := s.records[key]
	if !ok {
		return ErrNotFound
	}
	clone := cloneRecord(record)
	clone.StepsWalked = existing.StepsWalked
	s.records[key] = clone
	return nil
}

func (s *InMemoryFitnessStore) FindRange(ctx context.Context, userID, firstDate, lastDate string) ([]models.FitnessRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := []models.FitnessRecord{}
	for _, record := range s.records {
		if record.UserID == userID && record.Date >= firstDate && record.Date <= lastDate {
			records = append(records, *cloneRecord(record))
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}

// InMemoryMedicationStore is the map-backed counterpart for medications.
type InMemoryMedicationStore struct {
	mu      sync.RWMutex
	records map[string]*models.MedicationRecord
}

func NewInMemoryMedicationStore() *InMemoryMedicationStore {
	return &InMemoryMedicationStore{records: make(map[string]*models.MedicationRecord)}
}

func cloneMedication(r *models.MedicationRecord) *models.MedicationRecord {
	clone := *r
	clone.Times = append([]string(nil), r.Times...)
	clone.TakenLog = append([]models.TakenEntry(nil), r.TakenLog...)
	if r.EstimatedRefillDate != nil {
		d := *r.EstimatedRefillDate
		clone.EstimatedRefillDate = &d
	}
	return &clone
}

func (s *InMemoryMedicationStore) Insert(ctx context.Context, record *models.MedicationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.MedicationID] = cloneMedication(record)
	return nil
}

func (s *InMemoryMedicationStore) FindByID(ctx context.Context, userID, medicationID string) (*models.MedicationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[medicationID]
	if !ok || record.UserID != userID {
		return nil, nil
	}
	return cloneMedication(record), nil
}

func (s *InMemoryMedicationStore) FindByUser(ctx context.Context, userID string) ([]models.MedicationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := []models.MedicationRecord{}
	for _, record := range s.records {
		if record.UserID == userID {
			records = append(records, *cloneMedication(record))
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].CreatedAt.Before(records[j].CreatedAt) })
	return records, nil
}

func (s *InMemoryMedicationStore) Update(ctx context.Context, record *models.MedicationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.records[record.MedicationID]
	if !ok || existing.UserID != record.UserID {
		return ErrNotFound
	}
	clone := cloneMedication(record)
	clone.TakenLog = existing.TakenLog
	s.records[record.MedicationID] = clone
	return nil
}

func (s *InMemoryMedicationStore) AppendTaken(ctx context.Context, userID, medicationID string, entry models.TakenEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[medicationID]
	if !ok || record.UserID != userID {
		return ErrNotFound
	}
	record.TakenLog = append(record.TakenLog, entry)
	return nil
}
