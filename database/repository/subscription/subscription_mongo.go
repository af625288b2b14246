package subscriptionRepo

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

// SubscriptionRepository mirrors Stripe subscription state per business.
type SubscriptionRepository interface {
	Upsert(ctx context.Context, subscription *models.Subscription) error
	// GetByBusiness returns (nil, nil) when the business has no subscription.
	GetByBusiness(ctx context.Context, businessID string) (*models.Subscription, error)
	UpdateStatusByStripeID(ctx context.Context, stripeSubscriptionID, status string) error
}

// MongoSubscriptionRepo implements SubscriptionRepository using MongoDB.
type MongoSubscriptionRepo struct {
	subColl *mongo.Collection
}

// NewMongoSubscriptionRepo constructs a new instance of MongoSubscriptionRepo.
func NewMongoSubscriptionRepo() SubscriptionRepository {
	return &MongoSubscriptionRepo{
		subColl: database.DB().Collection("subscriptions"),
	}
}

func (repo *MongoSubscriptionRepo) Upsert(ctx context.Context, subscription *models.Subscription) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"stripe_subscription_id": subscription.StripeSubscriptionID}
	update := bson.M{"$set": subscription}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.subColl.UpdateOne(ctxWithTimeout, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting subscription: %w", err)
	}
	return nil
}

func (repo *MongoSubscriptionRepo) GetByBusiness(ctx context.Context, businessID string) (*models.Subscription, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var subscription models.Subscription
	err := repo.subColl.FindOne(ctxWithTimeout, bson.M{"business_id": businessID}).Decode(&subscription)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching subscription for business %s: %w", businessID, err)
	}
	return &subscription, nil
}

func (repo *MongoSubscriptionRepo) UpdateStatusByStripeID(ctx context.Context, stripeSubscriptionID, status string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"stripe_subscription_id": stripeSubscriptionID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	if _, err := repo.subColl.UpdateOne(ctxWithTimeout, filter, update); err != nil {
		return fmt.Errorf("error updating subscription %s status: %w", stripeSubscriptionID, err)
	}
	return nil
}
