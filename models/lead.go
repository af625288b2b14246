package models

import "time"

// Lead is a marketing-site inquiry captured before any customer record exists.
type Lead struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"businessId"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message    string    `bson:"message,omitempty" json:"message,omitempty"`
	Source     string    `bson:"source,omitempty" json:"source,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
