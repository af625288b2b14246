package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	serviceColl *mongo.Collection
}

// NewMongoServiceRepo constructs a new instance of MongoServiceRepo.
func NewMongoServiceRepo() ServiceRepository {
	return &MongoServiceRepo{
		serviceColl: database.DB().Collection("services"),
	}
}

func (repo *MongoServiceRepo) Create(ctx context.Context, service *models.Service) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.serviceColl.InsertOne(ctxWithTimeout, service); err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}
	return nil
}

func (repo *MongoServiceRepo) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	err := repo.serviceColl.FindOne(ctxWithTimeout, bson.M{"id": serviceID}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching service %s: %w", serviceID, err)
	}
	return &service, nil
}

func (repo *MongoServiceRepo) Update(ctx context.Context, service *models.Service) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": service.ID, "business_id": service.BusinessID}
	update := bson.M{"$set": service}
	if _, err := repo.serviceColl.UpdateOne(ctxWithTimeout, filter, update); err != nil {
		return fmt.Errorf("error updating service %s: %w", service.ID, err)
	}
	return nil
}

func (repo *MongoServiceRepo) List(ctx context.Context, businessID string) ([]models.Service, error) {
	return repo.find(ctx, bson.M{"business_id": businessID})
}

func (repo *MongoServiceRepo) ListActive(ctx context.Context, businessID string) ([]models.Service, error) {
	return repo.find(ctx, bson.M{"business_id": businessID, "is_active": true})
}

func (repo *MongoServiceRepo) find(ctx context.Context, filter bson.M) ([]models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.serviceColl.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching services: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var services []models.Service
	if err := cursor.All(ctxWithTimeout, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}
