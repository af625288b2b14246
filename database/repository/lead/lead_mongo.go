package leadRepo

import (
	"context"
	"fmt"
	"time"

	"bookwise/database"
	"bookwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeadRepository stores marketing-site inquiries.
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context, businessID string) ([]models.Lead, error)
}

// MongoLeadRepo implements LeadRepository using MongoDB.
type MongoLeadRepo struct {
	leadColl *mongo.Collection
}

// NewMongoLeadRepo constructs a new instance of MongoLeadRepo.
func NewMongoLeadRepo() LeadRepository {
	return &MongoLeadRepo{
		leadColl: database.DB().Collection("leads"),
	}
}

func (repo *MongoLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.leadColl.InsertOne(ctxWithTimeout, lead); err != nil {
		return fmt.Errorf("error creating lead: %w", err)
	}
	return nil
}

func (repo *MongoLeadRepo) List(ctx context.Context, businessID string) ([]models.Lead, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.leadColl.Find(ctxWithTimeout, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching leads: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var leads []models.Lead
	if err := cursor.All(ctxWithTimeout, &leads); err != nil {
		return nil, fmt.Errorf("error decoding leads: %w", err)
	}
	return leads, nil
}
