package reviewRepo

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

// ReviewRepository stores ingested reviews and their AI summaries.
type ReviewRepository interface {
	CreateMany(ctx context.Context, reviews []models.Review) error
	List(ctx context.Context, businessID string) ([]models.Review, error)
	ListInRange(ctx context.Context, businessID string, periodStart, periodEnd time.Time) ([]models.Review, error)
	SaveSummary(ctx context.Context, summary *models.ReviewSummary) error
	// LatestSummary returns (nil, nil) when no summary exists yet.
	LatestSummary(ctx context.Context, businessID string) (*models.ReviewSummary, error)
}

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	reviewColl  *mongo.Collection
	summaryColl *mongo.Collection
}

// NewMongoReviewRepo constructs a new instance of MongoReviewRepo.
func NewMongoReviewRepo() ReviewRepository {
	db := database.DB()
	return &MongoReviewRepo{
		reviewColl:  db.Collection("reviews"),
		summaryColl: db.Collection("review_summaries"),
	}
}

func (repo *MongoReviewRepo) CreateMany(ctx context.Context, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(reviews))
	for i := range reviews {
		docs[i] = reviews[i]
	}
	if _, err := repo.reviewColl.InsertMany(ctxWithTimeout, docs); err != nil {
		return fmt.Errorf("error ingesting reviews: %w", err)
	}
	return nil
}

func (repo *MongoReviewRepo) List(ctx context.Context, businessID string) ([]models.Review, error) {
	return repo.find(ctx, bson.M{"business_id": businessID})
}

func (repo *MongoReviewRepo) ListInRange(ctx context.Context, businessID string, periodStart, periodEnd time.Time) ([]models.Review, error) {
	filter := bson.M{
		"business_id": businessID,
		"reviewed_at": bson.M{"$gte": periodStart, "$lte": periodEnd},
	}
	return repo.find(ctx, filter)
}

func (repo *MongoReviewRepo) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "reviewed_at", Value: -1}})
	cursor, err := repo.reviewColl.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reviews: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var reviews []models.Review
	if err := cursor.All(ctxWithTimeout, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %w", err)
	}
	return reviews, nil
}

func (repo *MongoReviewRepo) SaveSummary(ctx context.Context, summary *models.ReviewSummary) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.summaryColl.InsertOne(ctxWithTimeout, summary); err != nil {
		return fmt.Errorf("error saving review summary: %w", err)
	}
	return nil
}

func (repo *MongoReviewRepo) LatestSummary(ctx context.Context, businessID string) (*models.ReviewSummary, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var summary models.ReviewSummary
	err := repo.summaryColl.FindOne(ctxWithTimeout, bson.M{"business_id": businessID}, opts).Decode(&summary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching latest review summary: %w", err)
	}
	return &summary, nil
}
