package database

import (
	"context"
	"errors"

	"github.com/Sri-Charith/AI-HealthVault/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FitnessStore is the Mongo implementation of services.FitnessStore, backed
// by a collection with a unique (user_id, date) index.
type FitnessStore struct {
	collection *mongo.Collection
}

func NewFitnessStore(collection *mongo.Collection) *FitnessStore {
	return &FitnessStore{collection: collection}
}

func (s *FitnessStore) FindByDate(ctx context.Context, userID, date string) (*models.FitnessRecord, error) {
	var record models.FitnessRecord
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *FitnessStore) FindLatestBefore(ctx context.Context, userID, date string) (*models.FitnessRecord, error) {
	filter := bson.M{"user_id": userID, "date": bson.M{"$lt": date}}
	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})

	var record models.FitnessRecord
	err := s.collection.FindOne(ctx, filter, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// InsertIfAbsent upserts with $setOnInsert so the existence check and the
// create are a single atomic operation. The loser of a concurrent first
// access gets the winner's document back instead of an error.
func (s *FitnessStore) InsertIfAbsent(ctx context.Context, record *models.FitnessRecord) (*models.FitnessRecord, error) {
	filter := bson.M{"user_id": record.UserID, "date": record.Date}
	update := bson.M{"$setOnInsert": record}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.FitnessRecord
	if err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *FitnessStore) IncrementSteps(ctx context.Context, userID, date string, delta int) (*models.FitnessRecord, error) {
	filter := bson.M{"user_id": userID, "date": date}
	update := bson.M{"$inc": bson.M{"steps_walked": delta}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record models.FitnessRecord
	if err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Replace writes the record's mutable fields in one update so an exercise
// list and its volume aggregate always land together.
func (s *FitnessStore) Replace(ctx context.Context, record *models.FitnessRecord) error {
	filter := bson.M{"user_id": record.UserID, "date": record.Date}
	update := bson.M{"$set": bson.M{
		"target":           record.Target,
		"fixed_monthly":    record.FixedMonthly,
		"workout_type":     record.WorkoutType,
		"exercises":        record.Exercises,
		"total_volume":     record.TotalVolume,
		"workout_duration": record.WorkoutDuration,
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

func (s *FitnessStore) FindRange(ctx context.Context, userID, firstDate, lastDate string) ([]models.FitnessRecord, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": firstDate, "$lte": lastDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	records := []models.FitnessRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
