package recordRepo

import (
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new medical record document.
func (r *MongoRecordRepo) Create(record *models.MedicalRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return nil
}

// Update modifies an existing medical record document.
func (r *MongoRecordRepo) Update(record *models.MedicalRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record.UpdatedAt = time.Now()
	filter := bson.M{"id": record.ID}
	update := bson.M{"$set": record}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update medical record with id %s: %w", record.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("medical record with id %s not found", record.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update by unique ID.
func (r *MongoRecordRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update medical record with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("medical record with id %s not found", id)
	}
	return nil
}

// Delete removes a medical record document by its ID.
func (r *MongoRecordRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete medical record with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("medical record with id %s not found", id)
	}
	return nil
}
