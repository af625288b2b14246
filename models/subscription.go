package models

import "time"

// Subscription mirrors the Stripe subscription attached to a business.
type Subscription struct {
	ID                   string    `bson:"id" json:"id"`
	BusinessID           string    `bson:"business_id" json:"businessId"`
	StripeCustomerID     string    `bson:"stripe_customer_id" json:"stripeCustomerId"`
	StripeSubscriptionID string    `bson:"stripe_subscription_id" json:"stripeSubscriptionId"`
	PriceID              string    `bson:"price_id" json:"priceId"`
	Status               string    `bson:"status" json:"status"`
	CurrentPeriodEnd     time.Time `bson:"current_period_end" json:"currentPeriodEnd"`
	CreatedAt            time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updatedAt"`
}
