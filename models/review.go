package models

import "time"

// Review is an ingested customer review.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"businessId"`
	Author     string    `bson:"author,omitempty" json:"author,omitempty"`
	Rating     int       `bson:"rating" json:"rating"`
	Body       string    `bson:"body" json:"body"`
	Source     string    `bson:"source,omitempty" json:"source,omitempty"`
	ReviewedAt time.Time `bson:"reviewed_at" json:"reviewedAt"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// ReviewSummary is an AI-generated digest of reviews over a period.
type ReviewSummary struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"business_id" json:"businessId"`
	PeriodStart time.Time `bson:"period_start" json:"periodStart"`
	PeriodEnd   time.Time `bson:"period_end" json:"periodEnd"`
	Summary     string    `bson:"summary" json:"summary"`
	ReviewCount int       `bson:"review_count" json:"reviewCount"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
