package doctorRepo

import (
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a doctor by its unique ID.
func (r *MongoDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doctor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch doctor with id %s: %w", id, err)
	}
	return &doctor, nil
}

// GetByDoctorID retrieves a doctor by its display ID.
func (r *MongoDoctorRepo) GetByDoctorID(doctorID string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&doctor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch doctor with doctorId %s: %w", doctorID, err)
	}
	return &doctor, nil
}

// List retrieves active doctors matching the options plus a total count.
func (r *MongoDoctorRepo) List(opts ListOptions) ([]models.Doctor, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"isActive": true}
	if opts.Search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": opts.Search, "$options": "i"}},
			{"doctorId": bson.M{"$regex": opts.Search, "$options": "i"}},
			{"specialization": bson.M{"$regex": opts.Search, "$options": "i"}},
		}
	}
	if opts.Specialization != "" {
		query["specialization"] = bson.M{"$regex": opts.Specialization, "$options": "i"}
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 10
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	order := 1
	if opts.SortOrder == "desc" {
		order = -1
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	for cursor.Next(ctx) {
		var d models.Doctor
		if err := cursor.Decode(&d); err != nil {
			return nil, 0, fmt.Errorf("failed to decode doctor: %w", err)
		}
		doctors = append(doctors, d)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return doctors, total, nil
}
