package businessRepo

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

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	businessColl *mongo.Collection
	memberColl   *mongo.Collection
}

// NewMongoBusinessRepo constructs a new instance of MongoBusinessRepo.
func NewMongoBusinessRepo() BusinessRepository {
	db := database.DB()
	return &MongoBusinessRepo{
		businessColl: db.Collection("businesses"),
		memberColl:   db.Collection("business_members"),
	}
}

func (repo *MongoBusinessRepo) Create(ctx context.Context, business *models.Business) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.businessColl.InsertOne(ctxWithTimeout, business); err != nil {
		return fmt.Errorf("error creating business: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when no business matches: an unknown tenant is a
// lookup miss, not a store failure.
func (repo *MongoBusinessRepo) GetByID(ctx context.Context, businessID string) (*models.Business, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var business models.Business
	err := repo.businessColl.FindOne(ctxWithTimeout, bson.M{"id": businessID}).Decode(&business)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching business %s: %w", businessID, err)
	}
	return &business, nil
}

func (repo *MongoBusinessRepo) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var business models.Business
	err := repo.businessColl.FindOne(ctxWithTimeout, bson.M{"slug": slug}).Decode(&business)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching business by slug %s: %w", slug, err)
	}
	return &business, nil
}

func (repo *MongoBusinessRepo) Update(ctx context.Context, business *models.Business) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": business.ID}
	update := bson.M{"$set": business}
	if _, err := repo.businessColl.UpdateOne(ctxWithTimeout, filter, update); err != nil {
		return fmt.Errorf("error updating business %s: %w", business.ID, err)
	}
	return nil
}

func (repo *MongoBusinessRepo) ListForUser(ctx context.Context, userID string) ([]models.Business, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.memberColl.Find(ctxWithTimeout, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("error fetching memberships for user %s: %w", userID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var businessIDs []string
	for cursor.Next(ctxWithTimeout) {
		var member models.BusinessMember
		if err := cursor.Decode(&member); err != nil {
			return nil, fmt.Errorf("error decoding membership: %w", err)
		}
		businessIDs = append(businessIDs, member.BusinessID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	if len(businessIDs) == 0 {
		return nil, nil
	}

	bizCursor, err := repo.businessColl.Find(ctxWithTimeout, bson.M{"id": bson.M{"$in": businessIDs}})
	if err != nil {
		return nil, fmt.Errorf("error fetching businesses: %w", err)
	}
	defer bizCursor.Close(ctxWithTimeout)

	var businesses []models.Business
	if err := bizCursor.All(ctxWithTimeout, &businesses); err != nil {
		return nil, fmt.Errorf("error decoding businesses: %w", err)
	}
	return businesses, nil
}

func (repo *MongoBusinessRepo) AddMember(ctx context.Context, member *models.BusinessMember) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.memberColl.InsertOne(ctxWithTimeout, member); err != nil {
		return fmt.Errorf("error adding business member: %w", err)
	}
	return nil
}

func (repo *MongoBusinessRepo) IsMember(ctx context.Context, businessID, userID string) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"business_id": businessID, "user_id": userID}
	count, err := repo.memberColl.CountDocuments(ctxWithTimeout, filter)
	if err != nil {
		return false, fmt.Errorf("error checking membership: %w", err)
	}
	return count > 0, nil
}
