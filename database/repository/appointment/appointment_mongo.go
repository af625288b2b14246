package apptRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookwise/database"
	"bookwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	apptColl *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &MongoAppointmentRepo{
		apptColl: database.DB().Collection("appointments"),
	}
}

func (repo *MongoAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.apptColl.InsertOne(ctxWithTimeout, appointment); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	err := repo.apptColl.FindOne(ctxWithTimeout, bson.M{"id": appointmentID}).Decode(&appointment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching appointment %s: %w", appointmentID, err)
	}
	return &appointment, nil
}

func (repo *MongoAppointmentRepo) Update(ctx context.Context, appointment *models.Appointment) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": appointment.ID, "business_id": appointment.BusinessID}
	if _, err := repo.apptColl.UpdateOne(ctxWithTimeout, filter, bson.M{"$set": appointment}); err != nil {
		return fmt.Errorf("error updating appointment %s: %w", appointment.ID, err)
	}
	return nil
}

func (repo *MongoAppointmentRepo) UpdateStatus(ctx context.Context, businessID, appointmentID, status string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": appointmentID, "business_id": businessID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	if _, err := repo.apptColl.UpdateOne(ctxWithTimeout, filter, update); err != nil {
		return fmt.Errorf("error updating appointment %s status: %w", appointmentID, err)
	}
	return nil
}

func (repo *MongoAppointmentRepo) List(ctx context.Context, businessID string, rangeStart, rangeEnd *time.Time) ([]models.Appointment, error) {
	filter := bson.M{"business_id": businessID}
	if rangeStart != nil {
		filter["start_time"] = bson.M{"$gte": *rangeStart}
	}
	if rangeEnd != nil {
		filter["end_time"] = bson.M{"$lte": *rangeEnd}
	}
	return repo.find(ctx, filter)
}

func (repo *MongoAppointmentRepo) ListActiveInRange(ctx context.Context, businessID string, rangeStart, rangeEnd time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"business_id": businessID,
		"status":      bson.M{"$in": models.ActiveAppointmentStatuses},
		"start_time":  bson.M{"$lte": rangeEnd},
		"end_time":    bson.M{"$gte": rangeStart},
	}
	return repo.find(ctx, filter)
}

func (repo *MongoAppointmentRepo) ListActiveOverlapping(ctx context.Context, businessID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	filter := bson.M{
		"business_id": businessID,
		"status":      bson.M{"$in": models.ActiveAppointmentStatuses},
		"start_time":  bson.M{"$lt": end},
		"end_time":    bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return repo.find(ctx, filter)
}

func (repo *MongoAppointmentRepo) CountByCustomerSince(ctx context.Context, businessID string, since time.Time) (map[string]int, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"business_id": businessID,
			"status":      bson.M{"$in": models.ActiveAppointmentStatuses},
			"start_time":  bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$customer_id",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := repo.apptColl.Aggregate(ctxWithTimeout, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating appointments by customer: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	counts := make(map[string]int)
	for cursor.Next(ctxWithTimeout) {
		var row struct {
			CustomerID string `bson:"_id"`
			Count      int    `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("error decoding aggregation row: %w", err)
		}
		counts[row.CustomerID] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return counts, nil
}

func (repo *MongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := repo.apptColl.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appointments []models.Appointment
	if err := cursor.All(ctxWithTimeout, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}
