package staffRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookwise/database"
	"bookwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	staffColl   *mongo.Collection
	hoursColl   *mongo.Collection
	timeOffColl *mongo.Collection
}

// NewMongoStaffRepo constructs a new instance of MongoStaffRepo.
func NewMongoStaffRepo() StaffRepository {
	db := database.DB()
	return &MongoStaffRepo{
		staffColl:   db.Collection("staff"),
		hoursColl:   db.Collection("staff_weekly_hours"),
		timeOffColl: db.Collection("staff_time_off"),
	}
}

func (repo *MongoStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.staffColl.InsertOne(ctxWithTimeout, staff); err != nil {
		return fmt.Errorf("error creating staff member: %w", err)
	}
	return nil
}

func (repo *MongoStaffRepo) GetByID(ctx context.Context, staffID string) (*models.Staff, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	err := repo.staffColl.FindOne(ctxWithTimeout, bson.M{"id": staffID}).Decode(&staff)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching staff %s: %w", staffID, err)
	}
	return &staff, nil
}

func (repo *MongoStaffRepo) Update(ctx context.Context, staff *models.Staff) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": staff.ID, "business_id": staff.BusinessID}
	if _, err := repo.staffColl.UpdateOne(ctxWithTimeout, filter, bson.M{"$set": staff}); err != nil {
		return fmt.Errorf("error updating staff %s: %w", staff.ID, err)
	}
	return nil
}

func (repo *MongoStaffRepo) List(ctx context.Context, businessID string) ([]models.Staff, error) {
	return repo.findStaff(ctx, bson.M{"business_id": businessID})
}

func (repo *MongoStaffRepo) ListActive(ctx context.Context, businessID string, staffID *string) ([]models.Staff, error) {
	filter := bson.M{"business_id": businessID, "is_active": true}
	if staffID != nil {
		filter["id"] = *staffID
	}
	return repo.findStaff(ctx, filter)
}

func (repo *MongoStaffRepo) findStaff(ctx context.Context, filter bson.M) ([]models.Staff, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.staffColl.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching staff: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var staff []models.Staff
	if err := cursor.All(ctxWithTimeout, &staff); err != nil {
		return nil, fmt.Errorf("error decoding staff: %w", err)
	}
	return staff, nil
}

func (repo *MongoStaffRepo) SetWeeklyHours(ctx context.Context, staffID string, hours []models.WeeklyHours) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.hoursColl.DeleteMany(ctxWithTimeout, bson.M{"staff_id": staffID}); err != nil {
		return fmt.Errorf("error clearing weekly hours for staff %s: %w", staffID, err)
	}
	if len(hours) == 0 {
		return nil
	}
	docs := make([]interface{}, len(hours))
	for i := range hours {
		hours[i].StaffID = staffID
		docs[i] = hours[i]
	}
	if _, err := repo.hoursColl.InsertMany(ctxWithTimeout, docs); err != nil {
		return fmt.Errorf("error inserting weekly hours for staff %s: %w", staffID, err)
	}
	return nil
}

func (repo *MongoStaffRepo) ListWeeklyHours(ctx context.Context, staffIDs []string) ([]models.WeeklyHours, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.hoursColl.Find(ctxWithTimeout, bson.M{"staff_id": bson.M{"$in": staffIDs}})
	if err != nil {
		return nil, fmt.Errorf("error fetching weekly hours: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var hours []models.WeeklyHours
	if err := cursor.All(ctxWithTimeout, &hours); err != nil {
		return nil, fmt.Errorf("error decoding weekly hours: %w", err)
	}
	return hours, nil
}

func (repo *MongoStaffRepo) AddTimeOff(ctx context.Context, timeOff *models.TimeOff) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.timeOffColl.InsertOne(ctxWithTimeout, timeOff); err != nil {
		return fmt.Errorf("error creating time off: %w", err)
	}
	return nil
}

func (repo *MongoStaffRepo) DeleteTimeOff(ctx context.Context, staffID, timeOffID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": timeOffID, "staff_id": staffID}
	if _, err := repo.timeOffColl.DeleteOne(ctxWithTimeout, filter); err != nil {
		return fmt.Errorf("error deleting time off %s: %w", timeOffID, err)
	}
	return nil
}

func (repo *MongoStaffRepo) ListTimeOff(ctx context.Context, staffIDs []string, rangeStart, rangeEnd time.Time) ([]models.TimeOff, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"staff_id":   bson.M{"$in": staffIDs},
		"start_time": bson.M{"$lte": rangeEnd},
		"end_time":   bson.M{"$gte": rangeStart},
	}
	cursor, err := repo.timeOffColl.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching time off: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var timeOff []models.TimeOff
	if err := cursor.All(ctxWithTimeout, &timeOff); err != nil {
		return nil, fmt.Errorf("error decoding time off: %w", err)
	}
	return timeOff, nil
}
