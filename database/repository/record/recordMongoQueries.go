package recordRepo

import (
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a medical record by its unique ID.
func (r *MongoRecordRepo) GetByID(id string) (*models.MedicalRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.MedicalRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch medical record with id %s: %w", id, err)
	}
	return &record, nil
}

// List retrieves medical records matching the options plus a total count,
// newest first.
func (r *MongoRecordRepo) List(opts ListOptions) ([]models.MedicalRecord, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if opts.PatientID != "" {
		query["patientId"] = opts.PatientID
	}
	if opts.DoctorID != "" {
		query["doctorId"] = opts.DoctorID
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 10
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve medical records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.MedicalRecord
	for cursor.Next(ctx) {
		var rec models.MedicalRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, 0, fmt.Errorf("failed to decode medical record: %w", err)
		}
		records = append(records, rec)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count medical records: %w", err)
	}
	return records, total, nil
}

// PatientHistory retrieves a patient's records newest first, capped at limit.
func (r *MongoRecordRepo) PatientHistory(patientID string, limit int64) ([]models.MedicalRecord, error) {
	return r.capped(bson.M{"patientId": patientID}, limit)
}

// DoctorRecords retrieves a doctor's records newest first, capped at limit.
func (r *MongoRecordRepo) DoctorRecords(doctorID string, limit int64) ([]models.MedicalRecord, error) {
	return r.capped(bson.M{"doctorId": doctorID}, limit)
}

func (r *MongoRecordRepo) capped(query bson.M, limit int64) ([]models.MedicalRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if limit < 1 {
		limit = 10
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve medical records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.MedicalRecord
	for cursor.Next(ctx) {
		var rec models.MedicalRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode medical record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
