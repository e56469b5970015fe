package database

import (
	"context"
	"errors"

	"github.com/Sri-Charith/AI-HealthVault/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MedicationStore is the Mongo implementation of services.MedicationStore.
type MedicationStore struct {
	collection *mongo.Collection
}

func NewMedicationStore(collection *mongo.Collection) *MedicationStore {
	return &MedicationStore{collection: collection}
}

func (s *MedicationStore) Insert(ctx context.Context, record *models.MedicationRecord) error {
	_, err := s.collection.InsertOne(ctx, record)
	return err
}

func (s *MedicationStore) FindByID(ctx context.Context, userID, medicationID string) (*models.MedicationRecord, error) {
	var record models.MedicationRecord
	err := s.collection.FindOne(ctx, bson.M{"medication_id": medicationID, "user_id": userID}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MedicationStore) FindByUser(ctx context.Context, userID string) ([]models.MedicationRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	records := []models.MedicationRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *MedicationStore) Update(ctx context.Context, record *models.MedicationRecord) error {
	filter := bson.M{"medication_id": record.MedicationID, "user_id": record.UserID}
	update := bson.M{"$set": bson.M{
		"stock_quantity":        record.StockQuantity,
		"tablets_per_dose":      record.TabletsPerDose,
		"times":                 record.Times,
		"frequency":             record.Frequency,
		"estimated_refill_date": record.EstimatedRefillDate,
		"updated_at":            record.UpdatedAt,
	}}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AppendTaken pushes one taken-log entry. No uniqueness is enforced here;
// the log is append-only and readers dedupe.
func (s *MedicationStore) AppendTaken(ctx context.Context, userID, medicationID string, entry models.TakenEntry) error {
	filter := bson.M{"medication_id": medicationID, "user_id": userID}
	update := bson.M{"$push": bson.M{"taken_log": entry}}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
