package appointmentRepo

import (
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves an appointment by its unique or display ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{{"id": id}, {"appointmentId": id}}}

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// List retrieves appointments matching the options plus a total count.
func (r *MongoAppointmentRepo) List(opts ListOptions) ([]models.Appointment, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if opts.Status != "" {
		query["status"] = opts.Status
	}
	if opts.DoctorID != "" {
		query["doctorId"] = opts.DoctorID
	}
	if opts.PatientID != "" {
		query["patientId"] = opts.PatientID
	}
	if opts.Date != nil {
		start, end := dayBounds(*opts.Date)
		query["date"] = bson.M{"$gte": start, "$lte": end}
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
		sortBy = "date"
	}
	order := -1
	if opts.SortOrder == "asc" {
		order = 1
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, 0, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return appts, total, nil
}

// ListForDoctorDay retrieves a doctor's calendar-blocking appointments on the
// given day. Cancelled and no-show bookings free the calendar and are left
// out; excludeID drops the appointment being rescheduled against itself.
func (r *MongoAppointmentRepo) ListForDoctorDay(doctorID string, day time.Time, excludeID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	start, end := dayBounds(day)
	query := bson.M{
		"doctorId": doctorID,
		"date":     bson.M{"$gte": start, "$lte": end},
		"status":   bson.M{"$nin": models.InactiveStatuses},
	}
	if excludeID != "" {
		query["id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}
