package customerRepo

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

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	customerColl *mongo.Collection
	churnColl    *mongo.Collection
}

// NewMongoCustomerRepo constructs a new instance of MongoCustomerRepo.
func NewMongoCustomerRepo() CustomerRepository {
	db := database.DB()
	return &MongoCustomerRepo{
		customerColl: db.Collection("customers"),
		churnColl:    db.Collection("churn_snapshots"),
	}
}

func (repo *MongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.customerColl.InsertOne(ctxWithTimeout, customer); err != nil {
		return fmt.Errorf("error creating customer: %w", err)
	}
	return nil
}

func (repo *MongoCustomerRepo) GetByID(ctx context.Context, customerID string) (*models.Customer, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	err := repo.customerColl.FindOne(ctxWithTimeout, bson.M{"id": customerID}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching customer %s: %w", customerID, err)
	}
	return &customer, nil
}

func (repo *MongoCustomerRepo) GetByEmail(ctx context.Context, businessID, email string) (*models.Customer, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	filter := bson.M{"business_id": businessID, "email": email}
	err := repo.customerColl.FindOne(ctxWithTimeout, filter).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching customer by email: %w", err)
	}
	return &customer, nil
}

func (repo *MongoCustomerRepo) List(ctx context.Context, businessID string) ([]models.Customer, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.customerColl.Find(ctxWithTimeout, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching customers: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var customers []models.Customer
	if err := cursor.All(ctxWithTimeout, &customers); err != nil {
		return nil, fmt.Errorf("error decoding customers: %w", err)
	}
	return customers, nil
}

func (repo *MongoCustomerRepo) SaveChurnSnapshot(ctx context.Context, snapshot *models.ChurnSnapshot) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.churnColl.InsertOne(ctxWithTimeout, snapshot); err != nil {
		return fmt.Errorf("error saving churn snapshot: %w", err)
	}
	return nil
}

func (repo *MongoCustomerRepo) LatestChurnSnapshot(ctx context.Context, businessID string) (*models.ChurnSnapshot, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "taken_at", Value: -1}})
	var snapshot models.ChurnSnapshot
	err := repo.churnColl.FindOne(ctxWithTimeout, bson.M{"business_id": businessID}, opts).Decode(&snapshot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching latest churn snapshot: %w", err)
	}
	return &snapshot, nil
}
